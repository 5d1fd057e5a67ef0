package board

// Static reference data. Routes reference cities by key; the adjacency
// index is derived once in Load and never mutated.

type cityDef struct {
	key         string
	state       string
	commodities []string
}

var cityTable = []cityDef{
	{"Portland", "ME", []string{"lumber", "fish"}},
	{"Boston", "MA", []string{"textiles", "fish"}},
	{"Providence", "RI", []string{"textiles"}},
	{"New Haven", "CT", []string{"machinery"}},
	{"New York", "NY", []string{"textiles", "machinery"}},
	{"Albany", "NY", []string{"lumber"}},
	{"Syracuse", "NY", []string{"machinery"}},
	{"Rochester", "NY", []string{"machinery"}},
	{"Buffalo", "NY", []string{"steel"}},
	{"Scranton", "PA", []string{"coal"}},
	{"Philadelphia", "PA", []string{"textiles", "machinery"}},
	{"Harrisburg", "PA", []string{"steel"}},
	{"Pittsburgh", "PA", []string{"steel", "coal"}},
	{"Baltimore", "MD", []string{"machinery", "fish"}},
	{"Washington", "DC", nil},
	{"Richmond", "VA", []string{"tobacco"}},
	{"Norfolk", "VA", []string{"fish", "tobacco"}},
	{"Raleigh", "NC", []string{"tobacco", "cotton"}},
	{"Charlotte", "NC", []string{"cotton", "textiles"}},
	{"Atlanta", "GA", []string{"cotton"}},
	{"Savannah", "GA", []string{"cotton", "rice"}},
	{"Charleston", "WV", []string{"coal"}},
	{"Knoxville", "TN", []string{"coal"}},
	{"Nashville", "TN", []string{"livestock"}},
	{"Memphis", "TN", []string{"cotton", "lumber"}},
	{"Louisville", "KY", []string{"tobacco"}},
	{"Cincinnati", "OH", []string{"machinery", "livestock"}},
	{"Columbus", "OH", []string{"machinery"}},
	{"Cleveland", "OH", []string{"steel", "machinery"}},
	{"Toledo", "OH", []string{"machinery"}},
	{"Detroit", "MI", []string{"machinery", "steel"}},
	{"Grand Rapids", "MI", []string{"lumber"}},
	{"Fort Wayne", "IN", []string{"machinery"}},
	{"Indianapolis", "IN", []string{"grain", "machinery"}},
	{"Chicago", "IL", []string{"livestock", "grain"}},
	{"Springfield", "IL", []string{"coal", "grain"}},
	{"St. Louis", "MO", []string{"grain", "livestock"}},
	{"Kansas City", "MO", []string{"livestock", "grain"}},
	{"Des Moines", "IA", []string{"grain", "livestock"}},
	{"Omaha", "NE", []string{"livestock", "grain"}},
	{"Minneapolis", "MN", []string{"grain", "lumber"}},
	{"Duluth", "MN", []string{"iron ore", "lumber"}},
	{"Milwaukee", "WI", []string{"grain", "machinery"}},
	{"Green Bay", "WI", []string{"lumber", "fish"}},
}

var routeTable = [][2]string{
	{"Portland", "Boston"},
	{"Boston", "Providence"},
	{"Providence", "New Haven"},
	{"New Haven", "New York"},
	{"Boston", "Albany"},
	{"Albany", "New York"},
	{"Albany", "Syracuse"},
	{"Syracuse", "Rochester"},
	{"Rochester", "Buffalo"},
	{"Syracuse", "Scranton"},
	{"Scranton", "New York"},
	{"Scranton", "Philadelphia"},
	{"New York", "Philadelphia"},
	{"Philadelphia", "Baltimore"},
	{"Philadelphia", "Harrisburg"},
	{"Harrisburg", "Pittsburgh"},
	{"Harrisburg", "Baltimore"},
	{"Baltimore", "Washington"},
	{"Washington", "Richmond"},
	{"Richmond", "Norfolk"},
	{"Norfolk", "Raleigh"},
	{"Richmond", "Raleigh"},
	{"Raleigh", "Charlotte"},
	{"Charlotte", "Atlanta"},
	{"Atlanta", "Savannah"},
	{"Charlotte", "Savannah"},
	{"Atlanta", "Knoxville"},
	{"Knoxville", "Charlotte"},
	{"Knoxville", "Nashville"},
	{"Nashville", "Memphis"},
	{"Memphis", "St. Louis"},
	{"Nashville", "Louisville"},
	{"Knoxville", "Charleston"},
	{"Charleston", "Pittsburgh"},
	{"Charleston", "Richmond"},
	{"Buffalo", "Cleveland"},
	{"Pittsburgh", "Cleveland"},
	{"Pittsburgh", "Columbus"},
	{"Columbus", "Cincinnati"},
	{"Columbus", "Cleveland"},
	{"Cincinnati", "Louisville"},
	{"Cincinnati", "Indianapolis"},
	{"Columbus", "Toledo"},
	{"Cleveland", "Toledo"},
	{"Toledo", "Detroit"},
	{"Detroit", "Grand Rapids"},
	{"Grand Rapids", "Chicago"},
	{"Grand Rapids", "Fort Wayne"},
	{"Toledo", "Fort Wayne"},
	{"Fort Wayne", "Chicago"},
	{"Fort Wayne", "Indianapolis"},
	{"Indianapolis", "St. Louis"},
	{"Indianapolis", "Chicago"},
	{"Louisville", "Indianapolis"},
	{"Chicago", "Milwaukee"},
	{"Milwaukee", "Green Bay"},
	{"Green Bay", "Minneapolis"},
	{"Chicago", "Springfield"},
	{"Springfield", "St. Louis"},
	{"Springfield", "Indianapolis"},
	{"St. Louis", "Kansas City"},
	{"Kansas City", "Omaha"},
	{"Kansas City", "Des Moines"},
	{"Des Moines", "Omaha"},
	{"Des Moines", "Chicago"},
	{"Des Moines", "Minneapolis"},
	{"Minneapolis", "Duluth"},
	{"Duluth", "Green Bay"},
}

// LikelyStartingCities are the hubs players usually open from. Seeding
// of independent railroads avoids routes within two hops of these.
var LikelyStartingCities = []string{
	"New York", "Chicago",
}

// Per-state thematic terms used to synthesize independent railroad names.

var stateFeatures = map[string][]string{
	"ME": {"Penobscot", "Casco"},
	"MA": {"Berkshire", "Merrimack"},
	"RI": {"Narragansett"},
	"CT": {"Housatonic", "Quinnipiac"},
	"NY": {"Hudson", "Mohawk", "Adirondack", "Erie"},
	"PA": {"Allegheny", "Susquehanna", "Lehigh", "Keystone"},
	"MD": {"Chesapeake", "Patapsco"},
	"DC": {"Potomac"},
	"VA": {"Shenandoah", "Tidewater", "Blue Ridge"},
	"NC": {"Piedmont", "Yadkin"},
	"GA": {"Chattahoochee", "Savannah River"},
	"WV": {"Kanawha", "Monongahela"},
	"TN": {"Cumberland", "Tennessee Valley"},
	"KY": {"Bluegrass", "Green River"},
	"OH": {"Scioto", "Cuyahoga", "Miami Valley"},
	"MI": {"Huron", "Saginaw"},
	"IN": {"Wabash", "White River"},
	"IL": {"Prairie", "Illini", "Sangamon"},
	"MO": {"Ozark", "Gasconade"},
	"IA": {"Cedar Valley", "Raccoon River"},
	"NE": {"Platte", "Loup"},
	"MN": {"Mesabi", "St. Croix"},
	"WI": {"Fox River", "Chippewa"},
}

var stateIndustries = map[string][]string{
	"ME": {"Timber"},
	"MA": {"Mill"},
	"NY": {"Lake Shore"},
	"PA": {"Anthracite", "Iron"},
	"VA": {"Tobacco Belt"},
	"NC": {"Cotton"},
	"GA": {"Cotton Belt"},
	"WV": {"Coal"},
	"TN": {"Copper Basin"},
	"KY": {"Coalfield"},
	"OH": {"Steel"},
	"MI": {"Lumber"},
	"IN": {"Limestone"},
	"IL": {"Grain Belt"},
	"MO": {"Lead Belt"},
	"IA": {"Corn Belt"},
	"NE": {"Stockyard"},
	"MN": {"Iron Range"},
	"WI": {"Timber"},
}

// StateFeatures returns the thematic geography terms for a state code.
func StateFeatures(state string) []string {
	return stateFeatures[state]
}

// StateIndustries returns the thematic industry terms for a state code.
func StateIndustries(state string) []string {
	return stateIndustries[state]
}

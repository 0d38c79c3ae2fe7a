package geo

// Static reference tables for US geography. Loaded once at process start and
// never mutated. OEWS area code conventions:
//
//	National: 0000000
//	State:    S{fips2}00000  e.g. S4800000 = Texas (FIPS 48)
//	Metro:    M{cbsa5}00     e.g. M1242000 = Austin-Round Rock (CBSA 12420)

// stateFIPS maps a two-letter state abbreviation to its FIPS code.
var stateFIPS = map[string]string{
	"AL": "01", "AK": "02", "AZ": "04", "AR": "05", "CA": "06",
	"CO": "08", "CT": "09", "DE": "10", "FL": "12", "GA": "13",
	"HI": "15", "ID": "16", "IL": "17", "IN": "18", "IA": "19",
	"KS": "20", "KY": "21", "LA": "22", "ME": "23", "MD": "24",
	"MA": "25", "MI": "26", "MN": "27", "MS": "28", "MO": "29",
	"MT": "30", "NE": "31", "NV": "32", "NH": "33", "NJ": "34",
	"NM": "35", "NY": "36", "NC": "37", "ND": "38", "OH": "39",
	"OK": "40", "OR": "41", "PA": "42", "RI": "44", "SC": "45",
	"SD": "46", "TN": "47", "TX": "48", "UT": "49", "VT": "50",
	"VA": "51", "WA": "53", "WV": "54", "WI": "55", "WY": "56",
	"DC": "11",
}

// stateNames maps a state FIPS code to its display name.
var stateNames = map[string]string{
	"01": "Alabama", "02": "Alaska", "04": "Arizona", "05": "Arkansas", "06": "California",
	"08": "Colorado", "09": "Connecticut", "10": "Delaware", "11": "DC", "12": "Florida",
	"13": "Georgia", "15": "Hawaii", "16": "Idaho", "17": "Illinois", "18": "Indiana",
	"19": "Iowa", "20": "Kansas", "21": "Kentucky", "22": "Louisiana", "23": "Maine",
	"24": "Maryland", "25": "Massachusetts", "26": "Michigan", "27": "Minnesota",
	"28": "Mississippi", "29": "Missouri", "30": "Montana", "31": "Nebraska", "32": "Nevada",
	"33": "New Hampshire", "34": "New Jersey", "35": "New Mexico", "36": "New York",
	"37": "North Carolina", "38": "North Dakota", "39": "Ohio", "40": "Oklahoma",
	"41": "Oregon", "42": "Pennsylvania", "44": "Rhode Island", "45": "South Carolina",
	"46": "South Dakota", "47": "Tennessee", "48": "Texas", "49": "Utah", "50": "Vermont",
	"51": "Virginia", "53": "Washington", "54": "West Virginia", "55": "Wisconsin",
	"56": "Wyoming",
}

// metroNames maps a 5-digit CBSA code to the metro display name. Only CBSAs
// present here produce a metro-level resolution; the OEWS area code is derived
// from the CBSA by MetroAreaCode.
var metroNames = map[string]string{
	// Largest metros.
	"35620": "New York-Newark-Jersey City, NY-NJ-PA",
	"31080": "Los Angeles-Long Beach-Anaheim, CA",
	"16980": "Chicago-Naperville-Elgin, IL-IN-WI",
	"19100": "Dallas-Fort Worth-Arlington, TX",
	"26420": "Houston-The Woodlands-Sugar Land, TX",
	"33100": "Miami-Fort Lauderdale-West Palm Beach, FL",
	"47900": "Washington-Arlington-Alexandria, DC-VA-MD-WV",
	"37980": "Philadelphia-Camden-Wilmington, PA-NJ-DE-MD",
	"12060": "Atlanta-Sandy Springs-Alpharetta, GA",
	"14460": "Boston-Cambridge-Newton, MA-NH",
	"33460": "Minneapolis-St. Paul-Bloomington, MN-WI",
	"41860": "San Francisco-Oakland-Berkeley, CA",
	"41740": "San Diego-Chula Vista-Carlsbad, CA",
	"45300": "Tampa-St. Petersburg-Clearwater, FL",
	"19820": "Detroit-Warren-Dearborn, MI",
	"36740": "Orlando-Kissimmee-Sanford, FL",
	"12420": "Austin-Round Rock-Georgetown, TX",
	"38060": "Phoenix-Mesa-Chandler, AZ",
	"41700": "San Antonio-New Braunfels, TX",
	"29820": "Las Vegas-Henderson-Paradise, NV",
	"40140": "Riverside-San Bernardino-Ontario, CA",
	"17460": "Cincinnati, OH-KY-IN",
	"28140": "Kansas City, MO-KS",
	"38900": "Portland-Vancouver-Hillsboro, OR-WA",
	"41180": "St. Louis, MO-IL",
	"32580": "McAllen-Edinburg-Mission, TX",
	"12580": "Baltimore-Columbia-Towson, MD",
	"36420": "Oklahoma City, OK",
	"27260": "Jacksonville, FL",
	"46140": "Tucson, AZ",
	"42660": "Seattle-Tacoma-Bellevue, WA",
	"17140": "Cleveland-Elyria, OH",
	"18140": "Columbus, OH",
	"19740": "Denver-Aurora-Lakewood, CO",
	"30460": "Louisville/Jefferson County, KY-IN",
	"32820": "Memphis, TN-MS-AR",
	"33260": "Milwaukee-Waukesha, WI",
	"26900": "Indianapolis-Carmel-Anderson, IN",
	"25540": "Hartford-East Hartford-Middletown, CT",
	"31540": "Madison, WI",
	"14260": "Boise City, ID",
	"34980": "Nashville-Davidson-Murfreesboro-Franklin, TN",
	"35380": "New Orleans-Metairie, LA",
	"40900": "Sacramento-Roseville-Folsom, CA",
	"41940": "San Jose-Sunnyvale-Santa Clara, CA",
	"24340": "Grand Rapids-Kentwood, MI",
	"10740": "Albuquerque, NM",
	"38300": "Pittsburgh, PA",

	// North Carolina.
	"16740": "Charlotte-Concord-Gastonia, NC-SC",
	"39580": "Raleigh-Cary, NC",
	"11700": "Asheville, NC",
	"20500": "Durham-Chapel Hill, NC",
	"24140": "Greensboro-High Point, NC",
	"49180": "Winston-Salem, NC",
	"48900": "Wilmington, NC",
	"22180": "Fayetteville, NC",
	"25860": "Hickory-Lenoir-Morganton, NC",
	"15500": "Burlington, NC",
	"40580": "Rocky Mount, NC",

	// Southeast.
	"24660": "Greenville-Anderson, SC",
	"16700": "Charleston-North Charleston, SC",
	"17900": "Columbia, SC",
	"42340": "Savannah, GA",
	"12260": "Augusta-Richmond County, GA-SC",
	"47260": "Virginia Beach-Norfolk-Newport News, VA-NC",
	"40060": "Richmond, VA",
	"13980": "Charlottesville, VA",
	"44420": "Roanoke, VA",
	"16860": "Chattanooga, TN-GA",
	"27740": "Knoxville, TN",
	"26300": "Huntsville, AL",
	"13820": "Birmingham-Hoover, AL",
	"33660": "Mobile, AL",
	"37860": "Pensacola-Ferry Pass-Brent, FL",
	"18880": "Daytona Beach-Deltona, FL",
	"38940": "Cape Coral-Fort Myers, FL",

	// Northeast.
	"35300": "New Haven-Milford, CT",
	"14860": "Bridgeport-Stamford-Norwalk, CT",
	"39300": "Providence-Warwick, RI-MA",
	"45060": "Syracuse, NY",
	"40380": "Rochester, NY",
	"15380": "Buffalo-Cheektowaga, NY",
	"10580": "Albany-Schenectady-Troy, NY",
	"44140": "Springfield, MA",
	"49340": "Worcester, MA-CT",

	// Midwest.
	"19380": "Dayton-Kettering, OH",
	"18020": "Akron, OH",
	"45780": "Toledo, OH",
	"44100": "Springfield, IL",
	"40420": "Rockford, IL",
	"28020": "Kalamazoo-Portage, MI",
	"22420": "Flint, MI",
	"29620": "Lansing-East Lansing, MI",
	"24580": "Green Bay, WI",
	"31900": "Lincoln, NE",
	"36540": "Omaha-Council Bluffs, NE-IA",
	"19780": "Des Moines-West Des Moines, IA",
	"26980": "Iowa City, IA",
	"20260": "Duluth, MN-WI",
	"22020": "Fargo, ND-MN",
	"13900": "Bismarck, ND",
	"43620": "Sioux Falls, SD",
	"39660": "Rapid City, SD",
	"41140": "Springfield, MO",
	"27900": "Joplin, MO",
	"45820": "Topeka, KS",
	"48620": "Wichita, KS",

	// Southwest / Mountain.
	"14500": "Boulder, CO",
	"24300": "Fort Collins, CO",
	"22660": "Colorado Springs, CO",
	"39380": "Pueblo, CO",
	"42140": "Santa Fe, NM",
	"29740": "Las Cruces, NM",
	"41620": "Salt Lake City, UT",
	"36260": "Ogden-Clearfield, UT",
	"39340": "Provo-Orem, UT",
	"41100": "St. George, UT",
	"39900": "Reno, NV",
	"16180": "Carson City, NV",
	"30860": "Lubbock, TX",
	"19124": "Midland, TX",
	"36220": "Odessa, TX",
	"22100": "El Paso, TX",
	"18580": "Corpus Christi, TX",
	"13140": "Beaumont-Port Arthur, TX",
	"11100": "Amarillo, TX",
	"47380": "Waco, TX",
	"17780": "College Station-Bryan, TX",
	"28660": "Killeen-Temple, TX",
	"10180": "Abilene, TX",

	// Pacific Northwest / West.
	"13380": "Bellingham, WA",
	"36500": "Olympia-Lacey-Tumwater, WA",
	"44060": "Spokane-Spokane Valley, WA",
	"45104": "Tacoma-Lakewood, WA",
	"28420": "Kennewick-Richland, WA",
	"21660": "Eugene-Springfield, OR",
	"41420": "Salem, OR",
	"13460": "Bend, OR",
	"32780": "Medford, OR",
	"18700": "Corvallis, OR",

	// California.
	"23420": "Fresno, CA",
	"12540": "Bakersfield, CA",
	"33700": "Modesto, CA",
	"44700": "Stockton, CA",
	"46700": "Visalia, CA",
	"42200": "Santa Barbara-Santa Maria-Goleta, CA",
	"37100": "Oxnard-Thousand Oaks-Ventura, CA",
	"41500": "Salinas, CA",
	"42100": "Santa Cruz-Watsonville, CA",
	"42220": "Santa Rosa-Petaluma, CA",
	"34900": "Napa, CA",
	"32900": "Merced, CA",
}

// cityKey identifies a (city, state) pair in lowercase.
type cityKey struct {
	city  string
	state string
}

// cityCBSA maps a lowercase (city, state abbreviation) pair to a CBSA code.
// A CBSA listed here but absent from metroNames degrades to no-metro, which
// mirrors having no mapping at all.
var cityCBSA = map[cityKey]string{
	// Major metros.
	{"new york", "ny"}:         "35620",
	{"los angeles", "ca"}:      "31080",
	{"chicago", "il"}:          "16980",
	{"dallas", "tx"}:           "19100",
	{"fort worth", "tx"}:       "19100",
	{"houston", "tx"}:          "26420",
	{"miami", "fl"}:            "33100",
	{"washington", "dc"}:       "47900",
	{"philadelphia", "pa"}:     "37980",
	{"atlanta", "ga"}:          "12060",
	{"boston", "ma"}:           "14460",
	{"minneapolis", "mn"}:      "33460",
	{"st. paul", "mn"}:         "33460",
	{"saint paul", "mn"}:       "33460",
	{"san francisco", "ca"}:    "41860",
	{"oakland", "ca"}:          "41860",
	{"san diego", "ca"}:        "41740",
	{"tampa", "fl"}:            "45300",
	{"st. petersburg", "fl"}:   "45300",
	{"saint petersburg", "fl"}: "45300",
	{"detroit", "mi"}:          "19820",
	{"orlando", "fl"}:          "36740",
	{"austin", "tx"}:           "12420",
	{"round rock", "tx"}:       "12420",
	{"phoenix", "az"}:          "38060",
	{"mesa", "az"}:             "38060",
	{"san antonio", "tx"}:      "41700",
	{"las vegas", "nv"}:        "29820",
	{"henderson", "nv"}:        "29820",
	{"riverside", "ca"}:        "40140",
	{"san bernardino", "ca"}:   "40140",
	{"portland", "or"}:         "38900",
	{"st. louis", "mo"}:        "41180",
	{"saint louis", "mo"}:      "41180",
	{"seattle", "wa"}:          "42660",
	{"bellevue", "wa"}:         "42660",
	{"columbus", "oh"}:         "18140",
	{"denver", "co"}:           "19740",
	{"aurora", "co"}:           "19740",
	{"indianapolis", "in"}:     "26900",
	{"nashville", "tn"}:        "34980",
	{"new orleans", "la"}:      "35380",
	{"sacramento", "ca"}:       "40900",
	{"san jose", "ca"}:         "41940",
	{"sunnyvale", "ca"}:        "41940",
	{"baltimore", "md"}:        "12580",
	{"oklahoma city", "ok"}:    "36420",
	{"jacksonville", "fl"}:     "27260",
	{"tucson", "az"}:           "46140",
	{"albuquerque", "nm"}:      "10740",
	{"cleveland", "oh"}:        "17140",
	{"memphis", "tn"}:          "32820",
	{"milwaukee", "wi"}:        "33260",
	{"louisville", "ky"}:       "30460",
	{"madison", "wi"}:          "31540",
	{"boise", "id"}:            "14260",
	{"hartford", "ct"}:         "25540",
	{"richmond", "va"}:         "40060",
	{"virginia beach", "va"}:   "47260",
	{"norfolk", "va"}:          "47260",
	{"salt lake city", "ut"}:   "41620",
	{"kansas city", "mo"}:      "28140",
	{"kansas city", "ks"}:      "28140",
	{"cincinnati", "oh"}:       "17460",
	{"pittsburgh", "pa"}:       "38300",
	{"grand rapids", "mi"}:     "24340",

	// North Carolina.
	{"charlotte", "nc"}:      "16740",
	{"concord", "nc"}:        "16740",
	{"gastonia", "nc"}:       "16740",
	{"mooresville", "nc"}:    "16740",
	{"huntersville", "nc"}:   "16740",
	{"raleigh", "nc"}:        "39580",
	{"cary", "nc"}:           "39580",
	{"apex", "nc"}:           "39580",
	{"wake forest", "nc"}:    "39580",
	{"asheville", "nc"}:      "11700",
	{"durham", "nc"}:         "20500",
	{"chapel hill", "nc"}:    "20500",
	{"greensboro", "nc"}:     "24140",
	{"high point", "nc"}:     "24140",
	{"winston-salem", "nc"}:  "49180",
	{"winston salem", "nc"}:  "49180",
	{"wilmington", "nc"}:     "48900",
	{"fayetteville", "nc"}:   "22180",
	{"hickory", "nc"}:        "25860",
	{"burlington", "nc"}:     "15500",
	{"rocky mount", "nc"}:    "40580",
	{"boone", "nc"}:          "14380",

	// Southeast.
	{"greenville", "sc"}:      "24660",
	{"columbia", "sc"}:        "17900",
	{"charleston", "sc"}:      "16700",
	{"myrtle beach", "sc"}:    "34820",
	{"savannah", "ga"}:        "42340",
	{"augusta", "ga"}:         "12260",
	{"chattanooga", "tn"}:     "16860",
	{"knoxville", "tn"}:       "27740",
	{"huntsville", "al"}:      "26300",
	{"birmingham", "al"}:      "13820",
	{"mobile", "al"}:          "33660",
	{"montgomery", "al"}:      "33860",
	{"pensacola", "fl"}:       "37860",
	{"daytona beach", "fl"}:   "18880",
	{"cape coral", "fl"}:      "38940",
	{"fort myers", "fl"}:      "38940",
	{"charlottesville", "va"}: "13980",
	{"roanoke", "va"}:         "44420",
	{"lynchburg", "va"}:       "31340",

	// Texas.
	{"el paso", "tx"}:         "22100",
	{"corpus christi", "tx"}:  "18580",
	{"lubbock", "tx"}:         "30860",
	{"midland", "tx"}:         "19124",
	{"odessa", "tx"}:          "36220",
	{"amarillo", "tx"}:        "11100",
	{"waco", "tx"}:            "47380",
	{"killeen", "tx"}:         "28660",
	{"college station", "tx"}: "17780",
	{"abilene", "tx"}:         "10180",
	{"beaumont", "tx"}:        "13140",
	{"mcallen", "tx"}:         "32580",

	// Mountain / Southwest.
	{"boulder", "co"}:          "14500",
	{"fort collins", "co"}:     "24300",
	{"colorado springs", "co"}: "22660",
	{"pueblo", "co"}:           "39380",
	{"santa fe", "nm"}:         "42140",
	{"las cruces", "nm"}:       "29740",
	{"ogden", "ut"}:            "36260",
	{"provo", "ut"}:            "39340",
	{"st. george", "ut"}:       "41100",
	{"saint george", "ut"}:     "41100",
	{"reno", "nv"}:             "39900",
	{"carson city", "nv"}:      "16180",

	// Pacific Northwest.
	{"bellingham", "wa"}: "13380",
	{"olympia", "wa"}:    "36500",
	{"spokane", "wa"}:    "44060",
	{"tacoma", "wa"}:     "45104",
	{"kennewick", "wa"}:  "28420",
	{"eugene", "or"}:     "21660",
	{"salem", "or"}:      "41420",
	{"bend", "or"}:       "13460",
	{"medford", "or"}:    "32780",
	{"corvallis", "or"}:  "18700",

	// California.
	{"fresno", "ca"}:        "23420",
	{"bakersfield", "ca"}:   "12540",
	{"stockton", "ca"}:      "44700",
	{"modesto", "ca"}:       "33700",
	{"santa barbara", "ca"}: "42200",
	{"santa rosa", "ca"}:    "42220",
	{"oxnard", "ca"}:        "37100",
	{"salinas", "ca"}:       "41500",
	{"santa cruz", "ca"}:    "42100",
	{"visalia", "ca"}:       "46700",
	{"napa", "ca"}:          "34900",
	{"merced", "ca"}:        "32900",

	// Midwest.
	{"dayton", "oh"}:      "19380",
	{"akron", "oh"}:       "18020",
	{"toledo", "oh"}:      "45780",
	{"kalamazoo", "mi"}:   "28020",
	{"flint", "mi"}:       "22420",
	{"lansing", "mi"}:     "29620",
	{"omaha", "ne"}:       "36540",
	{"lincoln", "ne"}:     "31900",
	{"des moines", "ia"}:  "19780",
	{"iowa city", "ia"}:   "26980",
	{"duluth", "mn"}:      "20260",
	{"fargo", "nd"}:       "22020",
	{"bismarck", "nd"}:    "13900",
	{"sioux falls", "sd"}: "43620",
	{"rapid city", "sd"}:  "39660",
	{"green bay", "wi"}:   "24580",
	{"springfield", "il"}: "44100",
	{"rockford", "il"}:    "40420",
	{"wichita", "ks"}:     "48620",
	{"topeka", "ks"}:      "45820",
	{"springfield", "mo"}: "41140",
	{"joplin", "mo"}:      "27900",

	// Northeast.
	{"buffalo", "ny"}:     "15380",
	{"rochester", "ny"}:   "40380",
	{"syracuse", "ny"}:    "45060",
	{"albany", "ny"}:      "10580",
	{"new haven", "ct"}:   "35300",
	{"bridgeport", "ct"}:  "14860",
	{"stamford", "ct"}:    "14860",
	{"springfield", "ma"}: "44140",
	{"worcester", "ma"}:   "49340",
	{"providence", "ri"}:  "39300",
	{"manchester", "nh"}:  "31700",
	{"portland", "me"}:    "38860",
	{"burlington", "vt"}:  "15540",
}

// cityAnyState maps a bare city name to a CBSA for the city-only fallback
// (used when the (city, state) pair has no entry). Where the same city name
// exists in several states the entry with the lexicographically smallest
// state wins, which keeps the documented precision tradeoff deterministic.
var cityAnyState = buildCityAnyState()

func buildCityAnyState() map[string]string {
	idx := make(map[string]string, len(cityCBSA))
	chosen := make(map[string]string, len(cityCBSA))
	for k, cbsa := range cityCBSA {
		if prev, ok := chosen[k.city]; ok && prev <= k.state {
			continue
		}
		chosen[k.city] = k.state
		idx[k.city] = cbsa
	}
	return idx
}

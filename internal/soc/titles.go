package soc

// titleSOC maps normalized (lowercase, single-spaced) job titles to canonical
// SOC codes. This is the exact-match tier and the candidate pool for the
// fuzzy tier. Several spellings of the same occupation share a code; the
// matcher dedupes by code.
var titleSOC = map[string]string{
	// Software and IT.
	"software engineer":            "15-1252.00",
	"software developer":           "15-1252.00",
	"senior software engineer":     "15-1252.00",
	"staff software engineer":      "15-1252.00",
	"programmer":                   "15-1251.00",
	"computer programmer":          "15-1251.00",
	"web developer":                "15-1254.00",
	"frontend developer":           "15-1254.00",
	"front end developer":          "15-1254.00",
	"backend developer":            "15-1252.00",
	"full stack developer":         "15-1252.00",
	"mobile developer":             "15-1252.00",
	"data engineer":                "15-1243.01",
	"senior data engineer":         "15-1243.01",
	"data warehousing specialist":  "15-1243.01",
	"database architect":           "15-1243.00",
	"database administrator":       "15-1242.00",
	"data scientist":               "15-2051.00",
	"machine learning engineer":    "15-2051.00",
	"data analyst":                 "15-2051.01",
	"business intelligence analyst": "15-2051.01",
	"devops engineer":              "15-1244.00",
	"site reliability engineer":    "15-1244.00",
	"systems administrator":        "15-1244.00",
	"system administrator":         "15-1244.00",
	"network engineer":             "15-1241.00",
	"network administrator":        "15-1244.00",
	"security engineer":            "15-1212.00",
	"information security analyst": "15-1212.00",
	"cybersecurity analyst":        "15-1212.00",
	"qa engineer":                  "15-1253.00",
	"quality assurance engineer":   "15-1253.00",
	"software tester":              "15-1253.00",
	"it support specialist":        "15-1232.00",
	"help desk technician":         "15-1232.00",
	"computer support specialist":  "15-1232.00",
	"systems analyst":              "15-1211.00",
	"computer systems analyst":     "15-1211.00",
	"ux designer":                  "15-1255.00",
	"ui designer":                  "15-1255.00",
	"web designer":                 "15-1255.00",
	"it manager":                   "11-3021.00",
	"engineering manager":          "11-3021.00",

	// Engineering and science.
	"civil engineer":         "17-2051.00",
	"mechanical engineer":    "17-2141.00",
	"electrical engineer":    "17-2071.00",
	"chemical engineer":      "17-2041.00",
	"industrial engineer":    "17-2112.00",
	"aerospace engineer":     "17-2011.00",
	"environmental engineer": "17-2081.00",
	"architect":              "17-1011.00",
	"chemist":                "19-2031.00",
	"biologist":              "19-1029.00",
	"economist":              "19-3011.00",
	"clinical psychologist":  "19-3033.00",
	"psychologist":           "19-3033.00",

	// Healthcare.
	"registered nurse":           "29-1141.00",
	"rn":                         "29-1141.00",
	"nurse practitioner":         "29-1171.00",
	"licensed practical nurse":   "29-2061.00",
	"lpn":                        "29-2061.00",
	"physician":                  "29-1215.00",
	"family medicine physician":  "29-1215.00",
	"surgeon":                    "29-1249.00",
	"dentist":                    "29-1021.00",
	"dental hygienist":           "29-1292.00",
	"pharmacist":                 "29-1051.00",
	"pharmacy technician":        "29-2052.00",
	"physical therapist":         "29-1123.00",
	"occupational therapist":     "29-1122.00",
	"veterinarian":               "29-1131.00",
	"veterinary technician":      "29-2056.00",
	"paramedic":                  "29-2042.00",
	"emt":                        "29-2042.00",
	"medical assistant":          "31-9092.00",
	"phlebotomist":               "31-9097.00",
	"home health aide":           "31-1121.00",
	"nursing assistant":          "31-1131.00",
	"cna":                        "31-1131.00",

	// Business, finance, legal.
	"accountant":                    "13-2011.00",
	"staff accountant":              "13-2011.00",
	"auditor":                       "13-2011.00",
	"financial analyst":             "13-2051.00",
	"financial advisor":             "13-2052.00",
	"actuary":                       "15-2011.00",
	"bookkeeper":                    "43-3031.00",
	"loan officer":                  "13-2072.00",
	"business analyst":              "13-1111.00",
	"management consultant":         "13-1111.00",
	"project manager":               "13-1082.00",
	"human resources manager":       "11-3121.00",
	"hr manager":                    "11-3121.00",
	"human resources specialist":    "13-1071.00",
	"recruiter":                     "13-1071.00",
	"marketing manager":             "11-2021.00",
	"product manager":               "11-2021.00",
	"marketing specialist":          "13-1161.00",
	"sales manager":                 "11-2022.00",
	"operations manager":            "11-1021.00",
	"general manager":               "11-1021.00",
	"chief executive officer":       "11-1011.00",
	"ceo":                           "11-1011.00",
	"lawyer":                        "23-1011.00",
	"attorney":                      "23-1011.00",
	"paralegal":                     "23-2011.00",

	// Education.
	"elementary school teacher": "25-2021.00",
	"middle school teacher":     "25-2022.00",
	"high school teacher":       "25-2031.00",
	"teacher":                   "25-2021.00",
	"professor":                 "25-1099.00",
	"teacher assistant":         "25-9045.00",
	"librarian":                 "25-4022.00",

	// Media and design.
	"graphic designer": "27-1024.00",
	"photographer":     "27-4021.00",
	"journalist":       "27-3023.00",
	"reporter":         "27-3023.00",
	"editor":           "27-3041.00",
	"technical writer": "27-3042.00",
	"writer":           "27-3043.00",

	// Trades and industrial.
	"electrician":           "47-2111.00",
	"plumber":               "47-2152.00",
	"carpenter":             "47-2031.00",
	"hvac technician":       "49-9021.00",
	"auto mechanic":         "49-3023.00",
	"automotive technician": "49-3023.00",
	"welder":                "51-4121.00",
	"machinist":             "51-4041.00",
	"construction worker":   "47-2061.00",
	"construction laborer":  "47-2061.00",
	"painter":               "47-2141.00",
	"roofer":                "47-2181.00",
	"landscaper":            "37-3011.00",
	"janitor":               "37-2011.00",
	"custodian":             "37-2011.00",
	"housekeeper":           "37-2012.00",

	// Transportation and warehouse.
	"truck driver":        "53-3032.00",
	"delivery driver":     "53-3033.00",
	"forklift operator":   "53-7051.00",
	"warehouse worker":    "53-7065.00",
	"warehouse associate": "53-7065.00",
	"pilot":               "53-2011.00",
	"flight attendant":    "53-2031.00",

	// Service, retail, office.
	"cashier":                         "41-2011.00",
	"retail sales associate":          "41-2031.00",
	"sales associate":                 "41-2031.00",
	"sales representative":            "41-4012.00",
	"real estate agent":               "41-9022.00",
	"insurance agent":                 "41-3021.00",
	"customer service representative": "43-4051.00",
	"receptionist":                    "43-4171.00",
	"administrative assistant":        "43-6014.00",
	"executive assistant":             "43-6011.00",
	"office manager":                  "43-1011.00",
	"data entry clerk":                "43-9021.00",
	"bank teller":                     "43-3071.00",
	"security guard":                  "33-9032.00",
	"police officer":                  "33-3051.00",
	"firefighter":                     "33-2011.00",
	"social worker":                   "21-1021.00",
	"mental health counselor":         "21-1014.00",
	"therapist":                       "21-1014.00",

	// Food service and hospitality.
	"chef":               "35-1011.00",
	"cook":               "35-2014.00",
	"line cook":          "35-2014.00",
	"server":             "35-3031.00",
	"waiter":             "35-3031.00",
	"waitress":           "35-3031.00",
	"bartender":          "35-3011.00",
	"barista":            "35-3023.00",
	"fast food worker":   "35-3023.00",
	"dishwasher":         "35-9021.00",
	"restaurant manager": "11-9051.00",
	"hotel manager":      "11-9081.00",
}

// socTitle maps SOC codes to their canonical occupation labels. Matches carry
// this label as Title; the matched table spelling stays in MatchedKey.
var socTitle = map[string]string{
	"11-1011.00": "Chief Executives",
	"11-1021.00": "General and Operations Managers",
	"11-2021.00": "Marketing Managers",
	"11-2022.00": "Sales Managers",
	"11-3021.00": "Computer and Information Systems Managers",
	"11-3121.00": "Human Resources Managers",
	"11-9051.00": "Food Service Managers",
	"11-9081.00": "Lodging Managers",
	"13-1071.00": "Human Resources Specialists",
	"13-1082.00": "Project Management Specialists",
	"13-1111.00": "Management Analysts",
	"13-1161.00": "Market Research Analysts and Marketing Specialists",
	"13-2011.00": "Accountants and Auditors",
	"13-2051.00": "Financial and Investment Analysts",
	"13-2052.00": "Personal Financial Advisors",
	"13-2072.00": "Loan Officers",
	"15-1211.00": "Computer Systems Analysts",
	"15-1212.00": "Information Security Analysts",
	"15-1232.00": "Computer User Support Specialists",
	"15-1241.00": "Computer Network Architects",
	"15-1242.00": "Database Administrators",
	"15-1243.00": "Database Architects",
	"15-1243.01": "Data Warehousing Specialists",
	"15-1244.00": "Network and Computer Systems Administrators",
	"15-1251.00": "Computer Programmers",
	"15-1252.00": "Software Developers",
	"15-1253.00": "Software Quality Assurance Analysts and Testers",
	"15-1254.00": "Web Developers",
	"15-1255.00": "Web and Digital Interface Designers",
	"15-2011.00": "Actuaries",
	"15-2051.00": "Data Scientists",
	"15-2051.01": "Business Intelligence Analysts",
	"17-1011.00": "Architects, Except Landscape and Naval",
	"17-2011.00": "Aerospace Engineers",
	"17-2041.00": "Chemical Engineers",
	"17-2051.00": "Civil Engineers",
	"17-2071.00": "Electrical Engineers",
	"17-2081.00": "Environmental Engineers",
	"17-2112.00": "Industrial Engineers",
	"17-2141.00": "Mechanical Engineers",
	"19-1029.00": "Biological Scientists, All Other",
	"19-2031.00": "Chemists",
	"19-3011.00": "Economists",
	"19-3033.00": "Clinical and Counseling Psychologists",
	"21-1014.00": "Mental Health Counselors",
	"21-1021.00": "Child, Family, and School Social Workers",
	"23-1011.00": "Lawyers",
	"23-2011.00": "Paralegals and Legal Assistants",
	"25-1099.00": "Postsecondary Teachers, All Other",
	"25-2021.00": "Elementary School Teachers, Except Special Education",
	"25-2022.00": "Middle School Teachers, Except Special and Career/Technical Education",
	"25-2031.00": "Secondary School Teachers, Except Special and Career/Technical Education",
	"25-4022.00": "Librarians and Media Collections Specialists",
	"25-9045.00": "Teaching Assistants, Except Postsecondary",
	"27-1024.00": "Graphic Designers",
	"27-3023.00": "News Analysts, Reporters, and Journalists",
	"27-3041.00": "Editors",
	"27-3042.00": "Technical Writers",
	"27-3043.00": "Writers and Authors",
	"27-4021.00": "Photographers",
	"29-1021.00": "Dentists, General",
	"29-1051.00": "Pharmacists",
	"29-1122.00": "Occupational Therapists",
	"29-1123.00": "Physical Therapists",
	"29-1131.00": "Veterinarians",
	"29-1141.00": "Registered Nurses",
	"29-1171.00": "Nurse Practitioners",
	"29-1215.00": "Family Medicine Physicians",
	"29-1249.00": "Surgeons, All Other",
	"29-1292.00": "Dental Hygienists",
	"29-2042.00": "Emergency Medical Technicians",
	"29-2052.00": "Pharmacy Technicians",
	"29-2056.00": "Veterinary Technologists and Technicians",
	"29-2061.00": "Licensed Practical and Licensed Vocational Nurses",
	"31-1121.00": "Home Health Aides",
	"31-1131.00": "Nursing Assistants",
	"31-9092.00": "Medical Assistants",
	"31-9097.00": "Phlebotomists",
	"33-2011.00": "Firefighters",
	"33-3051.00": "Police and Sheriff's Patrol Officers",
	"33-9032.00": "Security Guards",
	"35-1011.00": "Chefs and Head Cooks",
	"35-2014.00": "Cooks, Restaurant",
	"35-3011.00": "Bartenders",
	"35-3023.00": "Fast Food and Counter Workers",
	"35-3031.00": "Waiters and Waitresses",
	"35-9021.00": "Dishwashers",
	"37-2011.00": "Janitors and Cleaners, Except Maids and Housekeeping Cleaners",
	"37-2012.00": "Maids and Housekeeping Cleaners",
	"37-3011.00": "Landscaping and Groundskeeping Workers",
	"41-2011.00": "Cashiers",
	"41-2031.00": "Retail Salespersons",
	"41-3021.00": "Insurance Sales Agents",
	"41-4012.00": "Sales Representatives, Wholesale and Manufacturing",
	"41-9022.00": "Real Estate Sales Agents",
	"43-1011.00": "First-Line Supervisors of Office and Administrative Support Workers",
	"43-3031.00": "Bookkeeping, Accounting, and Auditing Clerks",
	"43-3071.00": "Tellers",
	"43-4051.00": "Customer Service Representatives",
	"43-4171.00": "Receptionists and Information Clerks",
	"43-6011.00": "Executive Secretaries and Executive Administrative Assistants",
	"43-6014.00": "Secretaries and Administrative Assistants",
	"43-9021.00": "Data Entry Keyers",
	"47-2031.00": "Carpenters",
	"47-2061.00": "Construction Laborers",
	"47-2111.00": "Electricians",
	"47-2141.00": "Painters, Construction and Maintenance",
	"47-2152.00": "Plumbers, Pipefitters, and Steamfitters",
	"47-2181.00": "Roofers",
	"49-3023.00": "Automotive Service Technicians and Mechanics",
	"49-9021.00": "Heating, Air Conditioning, and Refrigeration Mechanics and Installers",
	"51-4041.00": "Machinists",
	"51-4121.00": "Welders, Cutters, Solderers, and Brazers",
	"53-2011.00": "Airline Pilots, Copilots, and Flight Engineers",
	"53-2031.00": "Flight Attendants",
	"53-3032.00": "Heavy and Tractor-Trailer Truck Drivers",
	"53-3033.00": "Light Truck Drivers",
	"53-7051.00": "Industrial Truck and Tractor Operators",
	"53-7065.00": "Stockers and Order Fillers",
}

package patterns

// Default vocabulary tables. These are copied into a Library at construction and never
// mutated afterwards.

var defaultSkills = []string{
	// Programming languages
	"c", "c++", "java", "python", "javascript", "typescript", "go", "rust", "ruby", "kotlin", "swift", "scala", "perl", "shell", "bash",

	// Query and data languages
	"sql", "pl/sql", "t-sql", "soql", "graphql", "sparql", "hql",

	// Databases
	"oracle", "mysql", "postgresql", "mongodb", "db2", "sybase", "sqlite", "cassandra", "redis", "dynamodb", "elasticsearch",

	// Web and frontend
	"html", "css", "sass", "less", "bootstrap", "tailwind", "react", "angular", "vue", "next.js", "nuxt.js", "jquery",

	// Backend and frameworks
	"spring", "spring boot", "django", "flask", "express", "fastapi", "node.js", "dotnet", "asp.net", "laravel", "rails",

	// DevOps and CI/CD
	"git", "github", "gitlab", "bitbucket", "docker", "kubernetes", "jenkins", "circleci", "travis", "ansible", "terraform", "helm", "vagrant",

	// Cloud platforms
	"aws", "azure", "gcp", "cloud foundry", "openshift", "heroku", "firebase", "netlify",

	// Testing and QA
	"selenium", "cypress", "junit", "pytest", "testng", "postman", "soapui", "jmeter", "loadrunner",

	// Tools and IDEs
	"jira", "confluence", "eclipse", "intellij", "visual studio", "vscode", "xcode", "android studio", "makefile", "gdb", "valgrind", "wireshark",

	// CRM and Salesforce
	"salesforce", "apex", "lightning components", "omnistudio", "omniscript", "data loader", "workbench",

	// Data and analytics
	"pandas", "numpy", "matplotlib", "seaborn", "scikit-learn", "tensorflow", "keras", "pytorch", "hadoop", "spark", "airflow", "tableau", "power bi",

	// Messaging and APIs
	"rest", "soap", "grpc", "kafka", "rabbitmq", "mqtt", "websockets",

	// Security and monitoring
	"splunk", "prometheus", "grafana", "nagios", "zabbix", "sonarqube", "veracode", "owasp",

	// Misc
	"linux", "windows", "macos", "as400", "mainframe", "uml", "visio", "notepad++", "putty", "winscp",
}

// Tech stack categories are disjoint.
var (
	defaultLanguages = []string{"c", "c++", "java", "python", "sql", "pl/sql", "apex", "soql", "r", "javascript"}
	defaultTools     = []string{
		"git", "jira", "valgrind", "wireshark", "makefile", "gdb", "visual studio",
		"salesforce", "data loader", "workbench", "omnistudio", "omniscript", "lightning components",
	}
	defaultPlatforms = []string{"linux", "windows", "macos", "as400", "mainframe"}
)

var defaultCities = []string{
	"gurgaon", "gurugram", "noida", "delhi", "new delhi", "bangalore", "bengaluru", "hyderabad", "pune", "mumbai", "chennai", "ranchi",
	"kolkata", "jaipur", "ahmedabad", "lucknow", "bhopal", "visakhapatnam", "indore", "chandigarh", "kochi", "coimbatore", "nagpur", "patna",
	"surat", "vadodara", "trivandrum", "goa", "dehradun", "guwahati", "amritsar", "jodhpur", "mysore", "kanpur",
}

// alias -> canonical city; canonical names are added to the city set
var defaultCityAliases = map[string]string{
	"gurugram":   "gurgaon",
	"bengaluru":  "bangalore",
	"new delhi":  "delhi",
	"trivandrum": "thiruvananthapuram",
	"vadodara":   "baroda",
}

var defaultWorkHeaders = []string{
	"work experience", "professional experience", "employment history", "career contour",
	"experience narrative", "career history", "experience summary", "professional background",
	"job history", "career summary",
}

var defaultSectionEndHeaders = []string{
	"education", "skills", "projects", "certifications", "achievements", "academic",
}

var defaultCurrentKeywords = []string{
	"present", "current", "till date", "tilldate", "ongoing",
	"till now", "to date", "todate", "now", "continuing",
}

var defaultTitleIndicators = []string{
	"engineer", "developer", "manager", "analyst", "lead", "senior", "junior", "architect",
	"consultant", "specialist", "director", "officer", "coordinator", "administrator",
	"designer", "programmer", "scientist", "researcher", "advisor", "associate",
	"executive", "supervisor", "technician", "assistant", "head", "chief", "principal",
	"practitioner", "fellow", "partner", "tech",
	"trainee", "intern", "fresher",
}

// Applied in order, case-insensitively.
var defaultTitleNoise = []string{
	`\s*[-–—]\s*grade\s+\d+`, `\s*[-–—]\s*level\s+\d+`, `\s*[-–—]\s*band\s+[a-z0-9]+`,
	`\s*\(remote\)`, `\s*\(onsite\)`, `\s*\(hybrid\)`, `\s*\(contract\)`,
	`\s*\(full[- ]?time\)`, `\s*\(part[- ]?time\)`, `\s*\(temporary\)`,
	`\s*\([A-Z]{2,3}\)`, `\s*[-–—]\s*[A-Z]{2,3}\s*$`,
}

// keys are lowercased words with trailing dots removed
var defaultTitleAbbreviations = map[string]string{
	"sr": "Senior", "snr": "Senior",
	"jr": "Junior", "mgr": "Manager",
	"asst": "Assistant", "assoc": "Associate", "exec": "Executive",
	"vp": "Vice President", "svp": "Senior Vice President", "evp": "Executive Vice President",
	"avp": "Assistant Vice President", "cto": "Chief Technology Officer",
	"ceo": "Chief Executive Officer", "cfo": "Chief Financial Officer",
	"coo": "Chief Operating Officer", "cio": "Chief Information Officer",
	"cmo": "Chief Marketing Officer", "sme": "Subject Matter Expert",
}

var defaultTitleAcronyms = []string{
	"CEO", "CTO", "CFO", "CIO", "CMO", "COO", "VP", "SVP", "EVP", "AVP",
	"IT", "HR", "QA", "UI", "UX", "AI", "ML", "SME", "POC", "R&D", "SA",
}

// Strong title nouns used by the header check and the catch-all title pattern
var (
	headerTitleNouns = []string{"Analyst", "Architect", "Manager", "Engineer", "Lead"}
	titleNouns       = []string{
		"Engineer", "Lead", "Manager", "Developer", "Architect", "Analyst", "Principal",
		"Specialist", "Consultant", "Technician", "Administrator", "Director",
	}
)

var defaultNameBoilerplate = []string{"resume", "curriculum vitae", "cv", "biodata", "bio data", "profile"}

var defaultInstitutionWords = []string{
	"university", "college", "institute", "school", "board", "session", "percentage", "education",
}

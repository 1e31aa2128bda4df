package constants

// Category labels assigned by the rule-based classifier. The rule table
// itself lives in internal/classify; these are the stable strings stored
// in the categories table and reported to callers.
const (
	CategorySeniorPython    = "Senior Python Developer"
	CategoryPython          = "Python Developer"
	CategoryDataScientist   = "Data Scientist"
	CategoryDataAnalyst     = "Data Analyst"
	CategorySeniorJava      = "Senior Java Developer"
	CategoryJava            = "Java Developer"
	CategoryWebDeveloper    = "Web Developer"
	CategoryFullStack       = "Full Stack Developer"
	CategoryMLEngineer      = "ML Engineer"
	CategoryCloudEngineer   = "Cloud Engineer"
	CategoryDevOpsEngineer  = "DevOps Engineer"
	CategoryFresher         = "Fresher"
	CategoryJuniorDeveloper = "Junior Developer"
	CategoryMidLevel        = "Mid-Level Developer"
	CategorySeniorPro       = "Senior Professional"

	// CategoryUnknown marks resumes that yielded no extractable text.
	CategoryUnknown = "Unknown"
)

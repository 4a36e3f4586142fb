package classifier

// Category is one role bucket and the keywords that select it.
type Category struct {
	Name     string
	Keywords []string
}

// Taxonomy is ordered: when a title matches keywords of several categories
// the earlier category wins, so specific buckets come before catch-alls.
type Taxonomy []Category

// Names returns the category names in order.
func (t Taxonomy) Names() []string {
	names := make([]string, len(t))
	for i, c := range t {
		names[i] = c.Name
	}
	return names
}

// Has reports whether name is one of the categories.
func (t Taxonomy) Has(name string) bool {
	for _, c := range t {
		if c.Name == name {
			return true
		}
	}
	return false
}

// DefaultTaxonomy returns the built-in role taxonomy. Keywords are plain
// substrings of the lowered title. A trailing space ("ai ", "qa ", "hr ")
// only requires a space after the match, so "ai " still hits "mumbai office".
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		// Leadership & strategy
		{"Engineering Management", []string{"engineering manager", "director of engineering", "vp of engineering", "head of engineering", "cto", "tech lead", "team lead", "development manager", "software manager", "application lead", "technical lead"}},
		{"Product Leadership", []string{"chief product officer", "head of product", "vp product", "director of product", "product lead", "group product manager"}},
		{"Executive / C-Suite", []string{"ceo", "cfo", "coo", "chief executive", "president", "founder", "co-founder", "vice president", "director of operations"}},

		// Core tech
		{"Frontend Development", []string{"frontend", "front-end", "front end", "react", "angular", "vue", "ui developer", "web developer", "javascript developer", "js developer", "next.js"}},
		{"Backend Development", []string{"backend", "back-end", "back end", "node.js", "django", "flask", "laravel", "express", "ruby on rails", "php developer", "golang", "java developer", "spring boot", "java engineer", "python developer"}},
		{"Mobile Development", []string{"ios", "android", "mobile", "flutter", "react native", "swift", "kotlin", "app developer"}},
		{"Data Science", []string{"data scientist", "machine learning", "ai ", "artificial intelligence", "nlp", "computer vision", "deep learning", "predictive modeling", "generative ai", "llm", "applied scientist"}},
		{"Data Engineering", []string{"data engineer", "etl", "spark", "hadoop", "big data", "airflow", "kafka", "warehouse", "database engineer", "data architect", "database administrator", "dba"}},
		{"DevOps & Cloud", []string{"devops", "sre", "site reliability", "cloud engineer", "aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ci/cd", "infrastructure", "platform engineer"}},
		{"Cybersecurity", []string{"cyber", "infosec", "penetration", "vulnerability", "network security", "security analyst", "security engineer", "ciso", "security operations", "information security"}},
		{"Software Architecture", []string{"solutions architect", "technical architect", "enterprise architect", "software architect", "cloud architect", "systems architect"}},
		{"QA & Testing", []string{"qa ", "quality assurance", "test engineer", "automation tester", "selenium", "manual testing", "sdet", "test automation", "software tester"}},
		{"UI/UX Design", []string{"ui/ux", "user interface", "user experience", "product design", "interaction design", "figma", "ux researcher", "senior designer", "ux designer", "ui designer", "visual designer"}},
		{"Network Engineering", []string{"network engineer", "network administrator", "system administrator", "network analyst", "noc technician"}},

		// General tech catch-alls
		{"Software Development (General)", []string{"software engineer", "software development", "developer", "programmer", "sde", "full stack", "application developer", ".net", "c#", "c++", "software design", "engineer", "web engineer", "mulesoft", "salesforce developer"}},
		{"Data Analysis", []string{"data analyst", "business analyst", "analytics", "tableau", "power bi", "sql", "reporting", "bi developer", "operations analyst"}},
		{"Technical Support", []string{"technical support", "help desk", "service desk", "it support", "desktop support", "system support", "application support"}},

		// Business functions
		{"Product Management", []string{"product manager", "product owner", "scrum product", "product strategy"}},
		{"Project Management", []string{"project manager", "program manager", "scrum master", "agile", "delivery manager", "pmo", "project coordinator"}},
		{"Sales", []string{"sales", "business development", "bde", "account executive", "inside sales", "closer", "revenue", "account manager", "sales representative", "client executive"}},
		{"Marketing", []string{"marketing", "seo", "content", "social media", "brand", "growth", "campaign", "digital marketing", "market research"}},
		{"HR & Recruiting", []string{"hr ", "human resources", "recruiter", "talent", "people ops", "payroll", "hrbp", "benefits", "staffing"}},
		{"Customer Success", []string{"customer success", "csm", "client success", "client relationship", "onboarding specialist", "account specialist"}},
		{"Customer Service", []string{"customer service", "call center", "support specialist", "client support", "customer care", "representative"}},
		{"Finance & Accounting", []string{"finance", "accountant", "audit", "tax", "banking", "controller", "bookkeeper", "financial analyst", "accounts payable", "treasury"}},
		{"Operations", []string{"operations manager", "admin", "clerk", "logistics", "supply chain", "warehouse", "inventory", "coordinator", "scheduler", "planner"}},
		{"Legal & Compliance", []string{"legal", "lawyer", "attorney", "compliance", "counsel", "paralegal", "contract manager"}},

		// Content & creative
		{"Content & Writing", []string{"content writer", "copywriter", "editor", "content strategist", "technical writer", "documentation", "journalist"}},
		{"Creative & Media", []string{"graphic designer", "art director", "creative director", "animator", "illustrator", "multimedia", "video editor", "photographer", "producer"}},

		// Other industries
		{"Education", []string{"teacher", "professor", "tutor", "academic", "trainer", "instructor", "faculty", "education"}},
		{"Healthcare", []string{"nurse", "medical", "doctor", "pharmacy", "clinical", "physician", "therapist", "psychologist", "healthcare", "caregiver"}},
		{"Construction & Civil", []string{"site engineer", "civil engineer", "surveyor", "structural engineer", "construction manager", "site supervisor"}},
		{"Mechanical & Electrical", []string{"mechanical engineer", "electrical engineer", "technician", "electrician", "mechanic", "maintenance", "service engineer"}},
		{"Retail & Hospitality", []string{"store manager", "retail", "chef", "cook", "restaurant", "hotel", "housekeeping", "front desk", "receptionist", "barista"}},
	}
}

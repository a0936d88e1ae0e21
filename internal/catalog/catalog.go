package catalog

// The skill taxonomy is static configuration, not server data: the quiz
// service accepts any skill name it has questions for, and this catalog is
// the set the app offers.

// Category groups related skills under a display name.
type Category struct {
	Name   string
	Skills []string
}

var categories = []Category{
	{
		Name:   "Programming",
		Skills: []string{"C", "C++", "Python", "SQL", "Java", "JavaScript", "HTML", "CSS"},
	},
	{
		Name: "Technology",
		Skills: []string{
			"Data Analysis",
			"Machine Learning & Artificial Intelligence",
			"Cloud Computing",
			"Cybersecurity",
			"Blockchain Technology",
			"Docker",
			"Kubernetes",
		},
	},
	{
		Name:   "Business Skills",
		Skills: []string{"Stock Marketing", "Digital Marketing"},
	},
	{
		Name:   "Soft Skills",
		Skills: []string{"Communication Skills", "Leadership", "Time Management", "Resilience", "Adaptability"},
	},
}

// Categories returns all skill categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Skills returns the skills for the named category, or nil if unknown.
func Skills(category string) []string {
	for _, c := range categories {
		if c.Name == category {
			out := make([]string, len(c.Skills))
			copy(out, c.Skills)
			return out
		}
	}
	return nil
}

// AllSkills returns every skill across all categories in display order.
func AllSkills() []string {
	var out []string
	for _, c := range categories {
		out = append(out, c.Skills...)
	}
	return out
}

// Contains reports whether the named skill exists in the catalog.
func Contains(skill string) bool {
	for _, c := range categories {
		for _, s := range c.Skills {
			if s == skill {
				return true
			}
		}
	}
	return false
}

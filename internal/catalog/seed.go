package catalog

import "jobmatch-engine/internal/domain"

func salary(min, max int) *domain.SalaryRange {
	return &domain.SalaryRange{Min: min, Max: max}
}

// Seed returns the built-in demo postings in catalog order.
func Seed() []domain.Job {
	return []domain.Job{
		{
			ID:                 "RED-456",
			Title:              "Senior UX Designer",
			Company:            "Reddit",
			Location:           "Remote in USA",
			SalaryRange:        salary(146000, 232000),
			EmploymentType:     "Full-Time",
			CompanySize:        "51-200 Employees",
			Industry:           "AI & Machine Learning",
			RequiredSkills:     []string{"Figma", "Prototyping", "UX Research"},
			ValuesPromoted:     []string{"Impactful Work", "Transparency & Communication"},
			ExperienceRequired: "5-8 years",
			RoleLevel:          "Senior",
		},
		{
			ID:                 "GGL-320",
			Title:              "Design Manager",
			Company:            "Google",
			Location:           "Mountain View, CA",
			SalaryRange:        salary(180000, 280000),
			EmploymentType:     "Full-Time",
			CompanySize:        "10000+ Employees",
			Industry:           "Technology",
			RequiredSkills:     []string{"Design Leadership", "Figma", "User Research"},
			ValuesPromoted:     []string{"Innovation", "Mentorship & Career Development"},
			ExperienceRequired: "7-10 years",
			RoleLevel:          "Manager",
		},
		{
			ID:                 "AIRBNB-123",
			Title:              "Product Designer",
			Company:            "Airbnb",
			Location:           "San Francisco, CA",
			SalaryRange:        salary(160000, 220000),
			EmploymentType:     "Full-Time",
			CompanySize:        "1000-5000 Employees",
			Industry:           "Travel & Hospitality",
			RequiredSkills:     []string{"Figma", "UI/UX Design", "Prototyping"},
			ValuesPromoted:     []string{"Work-Life Balance", "Impactful Work"},
			ExperienceRequired: "4-6 years",
			RoleLevel:          "Senior",
		},
		{
			ID:                 "UBER-789",
			Title:              "Senior Product Designer",
			Company:            "Uber",
			Location:           "Remote in USA",
			SalaryRange:        salary(155000, 240000),
			EmploymentType:     "Full-Time",
			CompanySize:        "5000-10000 Employees",
			Industry:           "Transportation",
			RequiredSkills:     []string{"Sketch", "Figma", "User Research", "Wireframing"},
			ValuesPromoted:     []string{"Innovation", "Work-Life Balance"},
			ExperienceRequired: "5-8 years",
			RoleLevel:          "Senior",
		},
		{
			ID:                 "SLACK-555",
			Title:              "UI/UX Designer",
			Company:            "Slack",
			Location:           "New York City",
			SalaryRange:        salary(130000, 190000),
			EmploymentType:     "Full-Time",
			CompanySize:        "501-1000 Employees",
			Industry:           "Software",
			RequiredSkills:     []string{"Figma", "UI/UX Design", "Prototyping"},
			ValuesPromoted:     []string{"Transparency & Communication", "Mentorship & Career Development"},
			ExperienceRequired: "3-5 years",
			RoleLevel:          "Mid-level",
		},
		{
			ID:                 "NETFLIX-444",
			Title:              "Senior UX Researcher",
			Company:            "Netflix",
			Location:           "Los Angeles, CA",
			SalaryRange:        salary(170000, 250000),
			EmploymentType:     "Full-Time",
			CompanySize:        "1000-5000 Employees",
			Industry:           "Entertainment",
			RequiredSkills:     []string{"User Research", "Data Analysis", "Prototyping"},
			ValuesPromoted:     []string{"Innovation", "Impactful Work"},
			ExperienceRequired: "6-9 years",
			RoleLevel:          "Senior",
		},
		{
			ID:                 "SPOTIFY-333",
			Title:              "Product Designer",
			Company:            "Spotify",
			Location:           "Remote in USA",
			SalaryRange:        salary(145000, 200000),
			EmploymentType:     "Full-Time",
			CompanySize:        "1000-5000 Employees",
			Industry:           "Music & Audio",
			RequiredSkills:     []string{"Figma", "UI/UX Design", "User Research"},
			ValuesPromoted:     []string{"Work-Life Balance", "Innovation"},
			ExperienceRequired: "4-7 years",
			RoleLevel:          "Senior",
		},
		{
			ID:                 "TESLA-777",
			Title:              "UX Designer",
			Company:            "Tesla",
			Location:           "Austin, TX",
			SalaryRange:        salary(120000, 180000),
			EmploymentType:     "Full-Time",
			CompanySize:        "5000-10000 Employees",
			Industry:           "Automotive",
			RequiredSkills:     []string{"Sketch", "Figma", "Wireframing"},
			ValuesPromoted:     []string{"Innovation", "Impactful Work"},
			ExperienceRequired: "2-5 years",
			RoleLevel:          "Mid-level",
		},
		{
			ID:                 "MICROSOFT-888",
			Title:              "Senior Design Lead",
			Company:            "Microsoft",
			Location:           "Seattle, WA",
			SalaryRange:        salary(190000, 290000),
			EmploymentType:     "Full-Time",
			CompanySize:        "10000+ Employees",
			Industry:           "Technology",
			RequiredSkills:     []string{"Design Leadership", "Figma", "Strategic Design"},
			ValuesPromoted:     []string{"Mentorship & Career Development", "Innovation"},
			ExperienceRequired: "8-12 years",
			RoleLevel:          "Lead",
		},
		{
			ID:                 "ADOBE-999",
			Title:              "UI Designer",
			Company:            "Adobe",
			Location:           "San Jose, CA",
			SalaryRange:        salary(125000, 175000),
			EmploymentType:     "Full-Time",
			CompanySize:        "5000-10000 Employees",
			Industry:           "Software",
			RequiredSkills:     []string{"Adobe Creative Suite", "Figma", "UI/UX Design"},
			ValuesPromoted:     []string{"Creativity", "Work-Life Balance"},
			ExperienceRequired: "3-6 years",
			RoleLevel:          "Mid-level",
		},
		{
			ID:                 "STRIPE-111",
			Title:              "Product Designer",
			Company:            "Stripe",
			Location:           "Remote in USA",
			SalaryRange:        salary(165000, 230000),
			EmploymentType:     "Contract",
			CompanySize:        "1000-5000 Employees",
			Industry:           "Fintech",
			RequiredSkills:     []string{"Figma", "Prototyping", "User Research"},
			ValuesPromoted:     []string{"Innovation", "Transparency & Communication"},
			ExperienceRequired: "5-8 years",
			RoleLevel:          "Senior",
		},
		{
			ID:                 "ZOOM-222",
			Title:              "Senior Visual Designer",
			Company:            "Zoom",
			Location:           "San Jose, CA",
			SalaryRange:        salary(140000, 200000),
			EmploymentType:     "Full-Time",
			CompanySize:        "1000-5000 Employees",
			Industry:           "Communication",
			RequiredSkills:     []string{"Adobe Creative Suite", "Branding", "UI/UX Design"},
			ValuesPromoted:     []string{"Work-Life Balance", "Global Impact"},
			ExperienceRequired: "6-9 years",
			RoleLevel:          "Senior",
		},
	}
}

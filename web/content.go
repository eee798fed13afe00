package web

// Static page content. The numbers and program list come from the
// organization, not from any backend system.

type Stat struct {
	Number string
	Label  string
}

var siteStats = []Stat{
	{"5,000+", "Children Helped"},
	{"150+", "Programs"},
	{"25", "Years of Service"},
	{"1,200+", "Volunteers"},
}

type Program struct {
	Title       string
	Description string
}

var sitePrograms = []Program{
	{"Family Support Program", "Helping families navigate difficult times with counseling, resources, and direct assistance."},
	{"Wish Fulfillment", "Making dreams come true for children facing serious illness or hardship."},
	{"Community Care", "Neighborhood outreach that keeps children healthy, fed, and connected."},
	{"Educational Support", "Tutoring, school supplies, and scholarships for children who need a boost."},
	{"Health & Wellness", "Checkups, care packages, and wellness programs for growing kids."},
	{"Emergency Response", "Rapid help for families hit by crisis, from housing to hot meals."},
}

type VolunteerRole struct {
	Title       string
	Category    string
	Commitment  string
	Description string
}

var volunteerRoles = []VolunteerRole{
	{"Mentorship Program", "Direct Care", "4 hours/week", "Be a consistent, caring presence for a child who needs one."},
	{"Event Support", "Events", "Flexible", "Help set up, run, and wrap up fundraisers and community days."},
	{"Administrative Support", "Office", "2-6 hours/week", "Keep the office humming: data entry, phones, mailings."},
	{"Food Bank Support", "Direct Care", "3 hours/week", "Sort, pack, and distribute food for families in need."},
	{"Transportation Support", "Logistics", "Flexible", "Drive children and families to appointments and programs."},
	{"Social Media & Marketing", "Outreach", "2-4 hours/week", "Tell our story online and help us reach more supporters."},
}

type ImpactStory struct {
	Title  string
	Impact string
	Amount string
}

var impactStories = []ImpactStory{
	{"Sarah's Story", "Medical Care", "$2,500"},
	{"The Johnson Family", "Family Support", "$1,800"},
	{"Community Garden Project", "Community Program", "$5,000"},
}

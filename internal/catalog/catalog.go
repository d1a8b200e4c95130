package catalog

// Package catalog holds the static department/semester/subject hierarchy.
// It defines the valid value-space for material classification and is never
// mutated at runtime.

// Semester groups the subjects taught in one semester of a department.
type Semester struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Subjects []string `json:"subjects"`
}

// Department is one node of the taxonomy, identified by a short code and a
// display name used as the classification value on materials.
type Department struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Semesters []Semester `json:"semesters"`
}

var departments = []Department{
	{
		ID:   "csit",
		Name: "Computer Science & Information Technology",
		Semesters: []Semester{
			{ID: 1, Name: "Semester 1", Subjects: []string{"Programming Fundamentals", "Discrete Mathematics", "Calculus", "English Communication", "Physics"}},
			{ID: 2, Name: "Semester 2", Subjects: []string{"Object-Oriented Programming", "Linear Algebra", "Digital Logic Design", "Pakistan Studies"}},
			{ID: 3, Name: "Semester 3", Subjects: []string{"Data Structures", "Computer Organization & Assembly Language", "Differential Equations"}},
			{ID: 4, Name: "Semester 4", Subjects: []string{"Algorithms", "Database Systems", "Operating Systems", "Probability & Statistics"}},
			{ID: 5, Name: "Semester 5", Subjects: []string{"Computer Networks", "Software Engineering", "Theory of Automata"}},
			{ID: 6, Name: "Semester 6", Subjects: []string{"Artificial Intelligence", "Web Technologies", "Compiler Construction"}},
			{ID: 7, Name: "Semester 7", Subjects: []string{"Machine Learning", "Cybersecurity", "Final Year Project - I"}},
			{ID: 8, Name: "Semester 8", Subjects: []string{"Cloud Computing", "Big Data Analytics", "Final Year Project - II"}},
		},
	},
	{
		ID:   "ee",
		Name: "Electrical Engineering",
		Semesters: []Semester{
			{ID: 1, Name: "Semester 1", Subjects: []string{"Circuit Theory", "Engineering Drawing", "Applied Mathematics", "English"}},
			{ID: 2, Name: "Semester 2", Subjects: []string{"Electronics-I", "Electrical Machines-I", "Calculus", "Islamic Studies"}},
			{ID: 3, Name: "Semester 3", Subjects: []string{"Signals & Systems", "Power Systems-I", "Numerical Analysis"}},
			{ID: 4, Name: "Semester 4", Subjects: []string{"Control Systems", "Digital Signal Processing", "Power Electronics"}},
			{ID: 5, Name: "Semester 5", Subjects: []string{"Renewable Energy Systems", "Microprocessors", "Power Systems-II"}},
			{ID: 6, Name: "Semester 6", Subjects: []string{"Industrial Automation", "Electrical Machine Design", "Communication Systems"}},
			{ID: 7, Name: "Semester 7", Subjects: []string{"Smart Grid Technologies", "Thesis-I"}},
			{ID: 8, Name: "Semester 8", Subjects: []string{"Advanced Power Systems", "Thesis-II"}},
		},
	},
	{
		ID:   "ce",
		Name: "Civil Engineering",
		Semesters: []Semester{
			{ID: 1, Name: "Semester 1", Subjects: []string{"Engineering Mechanics", "Engineering Drawing", "Basic Civil Engineering"}},
			{ID: 2, Name: "Semester 2", Subjects: []string{"Surveying", "Construction Materials", "Fluid Mechanics"}},
			{ID: 3, Name: "Semester 3", Subjects: []string{"Structural Analysis-I", "Geotechnical Engineering-I"}},
			{ID: 4, Name: "Semester 4", Subjects: []string{"Concrete Technology", "Transportation Engineering"}},
			{ID: 5, Name: "Semester 5", Subjects: []string{"Hydraulics", "Environmental Engineering"}},
			{ID: 6, Name: "Semester 6", Subjects: []string{"Structural Design", "Project Management"}},
			{ID: 7, Name: "Semester 7", Subjects: []string{"Earthquake Engineering", "Thesis-I"}},
			{ID: 8, Name: "Semester 8", Subjects: []string{"Urban Planning", "Thesis-II"}},
		},
	},
	{
		ID:   "me",
		Name: "Mechanical Engineering",
		Semesters: []Semester{
			{ID: 1, Name: "Semester 1", Subjects: []string{"Thermodynamics", "Engineering Materials", "Basic Mechanics"}},
			{ID: 2, Name: "Semester 2", Subjects: []string{"Fluid Mechanics", "Manufacturing Processes"}},
			{ID: 3, Name: "Semester 3", Subjects: []string{"Heat Transfer", "Machine Design-I"}},
			{ID: 4, Name: "Semester 4", Subjects: []string{"Dynamics of Machinery", "Control Engineering"}},
			{ID: 5, Name: "Semester 5", Subjects: []string{"CAD/CAM", "Internal Combustion Engines"}},
			{ID: 6, Name: "Semester 6", Subjects: []string{"Robotics", "Renewable Energy Systems"}},
			{ID: 7, Name: "Semester 7", Subjects: []string{"Industrial Engineering", "Thesis-I"}},
			{ID: 8, Name: "Semester 8", Subjects: []string{"Advanced Manufacturing", "Thesis-II"}},
		},
	},
	{
		ID:   "ai",
		Name: "Artificial Intelligence",
		Semesters: []Semester{
			{ID: 1, Name: "Semester 1", Subjects: []string{"Introduction to AI", "Programming in Python"}},
			{ID: 2, Name: "Semester 2", Subjects: []string{"Data Structures", "Linear Algebra"}},
			{ID: 3, Name: "Semester 3", Subjects: []string{"Machine Learning Fundamentals", "Probability & Statistics"}},
			{ID: 4, Name: "Semester 4", Subjects: []string{"Deep Learning", "Computer Vision"}},
			{ID: 5, Name: "Semester 5", Subjects: []string{"Natural Language Processing", "Reinforcement Learning"}},
			{ID: 6, Name: "Semester 6", Subjects: []string{"AI Ethics", "Big Data Analytics"}},
			{ID: 7, Name: "Semester 7", Subjects: []string{"AI Project-I", "Advanced Neural Networks"}},
			{ID: 8, Name: "Semester 8", Subjects: []string{"AI Project-II", "Industry Applications"}},
		},
	},
	{
		ID:   "telecom",
		Name: "Telecommunication Engineering",
		Semesters: []Semester{
			{ID: 1, Name: "Semester 1", Subjects: []string{"Basic Electronics", "Calculus", "Programming"}},
			{ID: 2, Name: "Semester 2", Subjects: []string{"Digital Communication", "Circuit Analysis"}},
			{ID: 3, Name: "Semester 3", Subjects: []string{"Signals & Systems", "Electromagnetic Theory"}},
			{ID: 4, Name: "Semester 4", Subjects: []string{"Wireless Communication", "Data Networks"}},
			{ID: 5, Name: "Semester 5", Subjects: []string{"Optical Communication", "Antenna Theory"}},
			{ID: 6, Name: "Semester 6", Subjects: []string{"Mobile Networks", "Network Security"}},
			{ID: 7, Name: "Semester 7", Subjects: []string{"IoT & 5G", "Thesis-I"}},
			{ID: 8, Name: "Semester 8", Subjects: []string{"Advanced Telecom Systems", "Thesis-II"}},
		},
	},
	{
		ID:   "se",
		Name: "Software Engineering",
		Semesters: []Semester{
			{ID: 1, Name: "Semester 1", Subjects: []string{"Introduction to SE", "Programming Fundamentals"}},
			{ID: 2, Name: "Semester 2", Subjects: []string{"OOP", "Database Concepts"}},
			{ID: 3, Name: "Semester 3", Subjects: []string{"Software Design & Architecture", "Web Development"}},
			{ID: 4, Name: "Semester 4", Subjects: []string{"Software Testing", "Human-Computer Interaction"}},
			{ID: 5, Name: "Semester 5", Subjects: []string{"Cloud Computing", "Agile Development"}},
			{ID: 6, Name: "Semester 6", Subjects: []string{"DevOps", "Cybersecurity"}},
			{ID: 7, Name: "Semester 7", Subjects: []string{"Capstone Project-I", "AI in Software Engineering"}},
			{ID: 8, Name: "Semester 8", Subjects: []string{"Capstone Project-II", "Industry Practices"}},
		},
	},
	{
		ID:   "chem",
		Name: "Chemical Engineering",
		Semesters: []Semester{
			{ID: 1, Name: "Semester 1", Subjects: []string{"Basic Chemical Engineering", "Calculus"}},
			{ID: 2, Name: "Semester 2", Subjects: []string{"Fluid Mechanics", "Thermodynamics"}},
			{ID: 3, Name: "Semester 3", Subjects: []string{"Heat Transfer", "Process Calculations"}},
			{ID: 4, Name: "Semester 4", Subjects: []string{"Mass Transfer", "Chemical Reaction Engineering"}},
			{ID: 5, Name: "Semester 5", Subjects: []string{"Process Control", "Petroleum Refining"}},
			{ID: 6, Name: "Semester 6", Subjects: []string{"Polymer Engineering", "Environmental Chem Eng"}},
			{ID: 7, Name: "Semester 7", Subjects: []string{"Plant Design", "Thesis-I"}},
			{ID: 8, Name: "Semester 8", Subjects: []string{"Industrial Safety", "Thesis-II"}},
		},
	},
}

// Departments returns the full taxonomy.
// Callers must treat the result as read-only.
func Departments() []Department {
	return departments
}

// FindDepartment looks a department up by its display name.
func FindDepartment(name string) (Department, bool) {
	for _, d := range departments {
		if d.Name == name {
			return d, true
		}
	}
	return Department{}, false
}

// SemestersFor returns the semesters defined for a department, or nil if the
// department is unknown.
func SemestersFor(department string) []Semester {
	d, ok := FindDepartment(department)
	if !ok {
		return nil
	}
	return d.Semesters
}

// ValidSubjects returns the subject list for a department/semester pair.
// It is a pure lookup: unknown pairs yield nil, which callers use to clear
// dependent selections.
func ValidSubjects(department string, semester int) []string {
	for _, s := range SemestersFor(department) {
		if s.ID == semester {
			return s.Subjects
		}
	}
	return nil
}

// Valid reports whether the department/semester/subject triple exists in the
// taxonomy.
func Valid(department string, semester int, subject string) bool {
	for _, s := range ValidSubjects(department, semester) {
		if s == subject {
			return true
		}
	}
	return false
}

package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
const (
	PageHome      = "home"
	PageDashboard = "dashboard"

	PageStudents    = "students"
	PageStudent     = "student"
	PageStudentForm = "student-form"

	PageGuardians    = "guardians"
	PageGuardian     = "guardian"
	PageGuardianForm = "guardian-form"

	PageGroups    = "groups"
	PageGroup     = "group"
	PageGroupForm = "group-form"

	PageClasses   = "classes"
	PageClass     = "class"
	PageClassForm = "class-form"

	PageEnrollments    = "enrollments"
	PageEnrollmentForm = "enrollment-form"

	PageUsers    = "users"
	PageUserForm = "user-form"

	PageProfile           = "profile"
	PageIncompleteProfile = "incomplete-profile"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
	StaticPathFromRoot   = "frontend/static"
)

// Session and form cookie/field names shared by handlers and templates.
const (
	sessionCookieName = "session_id"
	// idleDeadlineHeader carries the refreshed idle deadline on every authenticated response.
	idleDeadlineHeader = "X-Session-Idle-Deadline"
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageHome:              "dashboard-content",
	PageDashboard:         "dashboard-content",
	PageStudents:          "students-content",
	PageStudent:           "student-content",
	PageStudentForm:       "student-form-content",
	PageGuardians:         "guardians-content",
	PageGuardian:          "guardian-content",
	PageGuardianForm:      "guardian-form-content",
	PageGroups:            "groups-content",
	PageGroup:             "group-content",
	PageGroupForm:         "group-form-content",
	PageClasses:           "classes-content",
	PageClass:             "class-content",
	PageClassForm:         "class-form-content",
	PageEnrollments:       "enrollments-content",
	PageEnrollmentForm:    "enrollment-form-content",
	PageUsers:             "users-content",
	PageUserForm:          "user-form-content",
	PageProfile:           "profile-content",
	PageIncompleteProfile: "incomplete-profile-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to dashboard-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "dashboard-content"
}

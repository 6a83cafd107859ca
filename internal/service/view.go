// Package service implements the application workflows: signup and
// login, the post lifecycle, and contact submissions. Workflows read
// and write through small store interfaces and report their outcome as
// a View (a named page plus a data bag), leaving rendering and HTTP
// translation to the handler layer.
package service

// View names every page the workflows can hand back to the rendering
// side. The core never produces markup; handlers decide whether a view
// becomes a redirect or a JSON body.
const (
	ViewHome    = "home"
	ViewLogin   = "login"
	ViewSignup  = "signup"
	ViewCreate  = "create"
	ViewUpdate  = "update"
	ViewBlog    = "blog"
	ViewContact = "contact"
	ViewAbout   = "about"
)

// View is the result of a workflow operation: which page to show next
// and the data the page needs.
type View struct {
	Name string
	Data map[string]any
}

// NewView builds a View with an optional acknowledgment message for
// the user.
func NewView(name, message string) View {
	v := View{Name: name}
	if message != "" {
		v.Data = map[string]any{"message": message}
	}
	return v
}

// Package views renders the server-side pages.
package views

import (
	"net/http"

	"natours/internal/domain/entity"

	"github.com/labstack/echo/v4"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Page is the data every page shares.
type Page struct {
	Title string
	// User is the logged-in visitor, nil for anonymous visitors.
	User  *entity.User
	Alert string
}

// Render writes node as an HTML response.
func Render(c echo.Context, statusCode int, node Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(statusCode)

	return node.Render(c.Response())
}

// OK renders node with status 200.
func OK(c echo.Context, node Node) error {
	return Render(c, http.StatusOK, node)
}

func layout(p Page, body ...Node) Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css?family=Lato:300,300i,700")),
				Link(Rel("stylesheet"), Href("/css/style.css")),
				Link(Rel("shortcut icon"), Type("image/png"), Href("/img/favicon.png")),
				TitleEl(Text("Natours | "+p.Title)),
			),
			Body(If(p.Alert != "", Data("alert", p.Alert)),
				header(p.User),
				Main(Class("main"), Group(body)),
				footer(),
				Script(Src("https://js.stripe.com/v3/")),
				Script(Src("/js/bundle.js")),
			),
		),
	)
}

func header(user *entity.User) Node {
	var account Node
	if user != nil {
		account = Nav(Class("nav nav--user"),
			A(Class("nav__el nav__el--logout"), Text("Log out")),
			A(Class("nav__el"), Href("/me"),
				Img(Class("nav__user-img"), Src("/img/users/"+user.Photo), Alt("Photo of "+user.Name)),
				Span(Text(user.FirstName())),
			),
		)
	} else {
		account = Nav(Class("nav nav--user"),
			A(Class("nav__el"), Href("/login"), Text("Log in")),
			A(Class("nav__el nav__el--cta"), Href("/signup"), Text("Sign up")),
		)
	}

	return Header(Class("header"),
		Nav(Class("nav nav--tours"),
			A(Class("nav__el"), Href("/"), Text("All tours")),
			Form(Class("nav__search"), Action("/"), Method("get"),
				Button(Class("nav__search-btn"), Type("submit"), Text("Search")),
				Input(Class("nav__search-input"), Type("text"), Name("search"), Placeholder("Search tours")),
			),
		),
		Div(Class("header__logo"), Img(Src("/img/logo-white.png"), Alt("Natours logo"))),
		account,
	)
}

func footer() Node {
	return Div(Class("footer"),
		Div(Class("footer__logo"), Img(Src("/img/logo-green.png"), Alt("Natours logo"))),
		Ul(Class("footer__nav"),
			Li(A(Href("#"), Text("About us"))),
			Li(A(Href("#"), Text("Download apps"))),
			Li(A(Href("#"), Text("Become a guide"))),
			Li(A(Href("#"), Text("Careers"))),
			Li(A(Href("#"), Text("Contact"))),
		),
		P(Class("footer__copyright"), Text("© by Jonas Schmedtmann.")),
	)
}

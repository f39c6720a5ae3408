package views

import (
	"fmt"
	"strconv"
	"strings"

	"natours/internal/domain/entity"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Overview lists tours as cards.
func Overview(p Page, tours []*entity.Tour) Node {
	cards := make([]Node, 0, len(tours))
	for _, tour := range tours {
		cards = append(cards, tourCard(tour))
	}

	return layout(p, Div(Class("card-container"), Group(cards)))
}

func tourCard(tour *entity.Tour) Node {
	var start, next string
	if tour.StartLocation != nil {
		start = tour.StartLocation.Description
	}
	if len(tour.StartDates) > 0 {
		next = tour.StartDates[0].Format("January 2006")
	}

	return Div(Class("card"),
		Div(Class("card__header"),
			Div(Class("card__picture"),
				Img(Class("card__picture-img"), Src("/img/tours/"+tour.ImageCover), Alt(tour.Name)),
			),
			H3(Class("heading-tertirary"), Span(Text(tour.Name))),
		),
		Div(Class("card__details"),
			H4(Class("card__sub-heading"), Text(fmt.Sprintf("%s %d-day tour", tour.Difficulty, tour.Duration))),
			P(Class("card__text"), Text(tour.Summary)),
			cardData(start),
			cardData(next),
			cardData(fmt.Sprintf("%d stops", len(tour.Locations))),
			cardData(fmt.Sprintf("%d people", tour.MaxGroupSize)),
		),
		Div(Class("card__footer"),
			P(Span(Class("card__footer-value"), Text(money(tour.Price))), Span(Class("card__footer-text"), Text(" per person"))),
			P(Class("card__ratings"),
				Span(Class("card__footer-value"), Text(strconv.FormatFloat(tour.RatingsAverage, 'f', -1, 64))),
				Span(Class("card__footer-text"), Text(fmt.Sprintf(" rating (%d)", tour.RatingsQuantity))),
			),
			A(Class("btn btn--green btn--small"), Href("/tour/"+tour.Slug), Text("Details")),
		),
	)
}

func cardData(text string) Node {
	return Div(Class("card__data"), Span(Text(text)))
}

// TourDetail shows one tour with its guides, stops and reviews.
func TourDetail(p Page, tour *entity.Tour) Node {
	guides := make([]Node, 0, len(tour.Guides))
	for _, guide := range tour.Guides {
		label := "Tour guide"
		if guide.Role == entity.RoleLeadGuide {
			label = "Lead guide"
		}
		guides = append(guides, Div(Class("overview-box__detail"),
			Img(Class("overview-box__img"), Src("/img/users/"+guide.Photo), Alt(label)),
			Span(Class("overview-box__label"), Text(label)),
			Span(Class("overview-box__text"), Text(guide.Name)),
		))
	}

	reviews := make([]Node, 0, len(tour.Reviews))
	for _, review := range tour.Reviews {
		reviews = append(reviews, reviewCard(review))
	}

	var nextDate string
	if len(tour.StartDates) > 0 {
		nextDate = tour.StartDates[0].Format("January 2006")
	}

	images := make([]Node, 0, len(tour.Images))
	for i, img := range tour.Images {
		images = append(images, Div(Class("picture-box"),
			Img(Class(fmt.Sprintf("picture-box__img picture-box__img--%d", i+1)), Src("/img/tours/"+img), Alt(fmt.Sprintf("%s Tour %d", tour.Name, i+1))),
		))
	}

	var bookingCTA Node
	if p.User != nil {
		bookingCTA = Button(Class("btn btn--green span-all-rows"), ID("book-tour"), Data("tour-id", tour.ID.String()), Text("Book tour now!"))
	} else {
		bookingCTA = A(Class("btn btn--green span-all-rows"), Href("/login"), Text("Log in to book tour"))
	}

	return layout(p,
		Section(Class("section-header"),
			Div(Class("header__hero"), Img(Class("header__hero-img"), Src("/img/tours/"+tour.ImageCover), Alt(tour.Name))),
			Div(Class("heading-box"),
				H1(Class("heading-primary"), Span(Text(tour.Name+" tour"))),
				Div(Class("heading-box__group"),
					Div(Class("heading-box__detail"), Span(Class("heading-box__text"), Text(fmt.Sprintf("%d days", tour.Duration)))),
					If(tour.StartLocation != nil, Div(Class("heading-box__detail"), Span(Class("heading-box__text"), Text(startDescription(tour))))),
				),
			),
		),
		Section(Class("section-description"),
			Div(Class("overview-box"),
				Div(Class("overview-box__group"),
					H2(Class("heading-secondary ma-bt-lg"), Text("Quick facts")),
					fact("Next date", nextDate),
					fact("Difficulty", string(tour.Difficulty)),
					fact("Participants", fmt.Sprintf("%d people", tour.MaxGroupSize)),
					fact("Rating", fmt.Sprintf("%g / 5", tour.RatingsAverage)),
				),
				Div(Class("overview-box__group"),
					H2(Class("heading-secondary ma-bt-lg"), Text("Your tour guides")),
					Group(guides),
				),
			),
			Div(Class("description-box"),
				H2(Class("heading-secondary ma-bt-lg"), Text("About "+tour.Name+" tour")),
				Group(descriptionParagraphs(tour.Description)),
			),
		),
		Section(Class("section-pictures"), Group(images)),
		Section(Class("section-map"), Div(ID("map"), Data("locations", locationsJSON(tour.Locations)))),
		Section(Class("section-reviews"), Div(Class("reviews"), Group(reviews))),
		Section(Class("section-cta"),
			Div(Class("cta"),
				Div(Class("cta__content"),
					H2(Class("heading-secondary"), Text("What are you waiting for?")),
					P(Class("cta__text"), Text(fmt.Sprintf("%d days. 1 adventure. Infinite memories. Make it yours today!", tour.Duration))),
					bookingCTA,
				),
			),
		),
	)
}

func descriptionParagraphs(description string) []Node {
	var nodes []Node
	for _, paragraph := range strings.Split(description, "\n") {
		nodes = append(nodes, P(Class("description__text"), Text(paragraph)))
	}

	return nodes
}

func startDescription(tour *entity.Tour) string {
	if tour.StartLocation == nil {
		return ""
	}

	return tour.StartLocation.Description
}

func fact(label, text string) Node {
	return Div(Class("overview-box__detail"),
		Span(Class("overview-box__label"), Text(label)),
		Span(Class("overview-box__text"), Text(text)),
	)
}

func reviewCard(review *entity.Review) Node {
	var name, photo string
	if review.User != nil {
		name, photo = review.User.Name, review.User.Photo
	}
	stars := make([]Node, 0, 5)
	for i := 1; i <= 5; i++ {
		state := "inactive"
		if review.Rating >= float64(i) {
			state = "active"
		}
		stars = append(stars, Span(Class("reviews__star reviews__star--"+state), Text("★")))
	}

	return Div(Class("reviews__card"),
		Div(Class("reviews__avatar"),
			Img(Class("reviews__avatar-img"), Src("/img/users/"+photo), Alt(name)),
			H6(Class("reviews__user"), Text(name)),
		),
		P(Class("reviews__text"), Text(review.Review)),
		Div(Class("reviews__rating"), Group(stars)),
	)
}

// Login renders the login form; the page script posts it to the API.
func Login(p Page) Node {
	return layout(p,
		Div(Class("login-form"),
			H2(Class("heading-secondary ma-bt-lg"), Text("Log into your account")),
			Form(Class("form form--login"),
				formField("email", "Email address", "email", "you@example.com", ""),
				formField("password", "Password", "password", "••••••••", ""),
				Div(Class("form__group"), Button(Class("btn btn--green"), Text("Login"))),
			),
		),
	)
}

// Signup renders the registration form.
func Signup(p Page) Node {
	return layout(p,
		Div(Class("login-form"),
			H2(Class("heading-secondary ma-bt-lg"), Text("Create your account")),
			Form(Class("form form--signup"),
				formField("name", "Your name", "text", "", ""),
				formField("email", "Email address", "email", "you@example.com", ""),
				formField("password", "Password", "password", "••••••••", ""),
				formField("passwordConfirm", "Confirm password", "password", "••••••••", ""),
				Div(Class("form__group"), Button(Class("btn btn--green"), Text("Sign up"))),
			),
		),
	)
}

// Confirmed tells a user their email is confirmed.
func Confirmed(p Page) Node {
	return layout(p,
		Div(Class("error"),
			Div(Class("error__title"), H2(Class("heading-secondary heading-secondary--error"), Text("Your account is confirmed!"))),
			Div(Class("error__msg"), A(Class("btn btn--green"), Href("/"), Text("Find your next tour"))),
		),
	)
}

// Account renders the settings page of the logged-in user.
func Account(p Page) Node {
	user := p.User

	return layout(p,
		Div(Class("user-view"),
			Nav(Class("user-view__menu"),
				Ul(Class("side-nav"),
					navItem("/me", "Settings", true),
					navItem("/my-tours", "My bookings", false),
					navItem("/my-reviews", "My reviews", false),
				),
			),
			Div(Class("user-view__content"),
				Div(Class("user-view__form-container"),
					H2(Class("heading-secondary ma-bt-md"), Text("Your account settings")),
					Form(Class("form form-user-data"), Action("/submit-user-data"), Method("POST"), EncType("multipart/form-data"),
						formField("name", "Name", "text", "", user.Name),
						formField("email", "Email address", "email", "", user.Email),
						Div(Class("form__group form__photo-upload"),
							Img(Class("form__user-photo"), Src("/img/users/"+user.Photo), Alt("User photo")),
							Input(Class("form__upload"), Type("file"), Accept("image/*"), ID("photo"), Name("photo")),
							Label(For("photo"), Text("Choose new photo")),
						),
						Div(Class("form__group right"), Button(Class("btn btn--small btn--green"), Text("Save settings"))),
					),
				),
				Div(Class("line"), Raw("&nbsp;")),
				Div(Class("user-view__form-container"),
					H2(Class("heading-secondary ma-bt-md"), Text("Password change")),
					Form(Class("form form-user-password"),
						formField("password-current", "Current password", "password", "••••••••", ""),
						formField("password", "New password", "password", "••••••••", ""),
						formField("password-confirm", "Confirm password", "password", "••••••••", ""),
						Div(Class("form__group right"), Button(Class("btn btn--small btn--green btn--save-password"), Text("Save password"))),
					),
				),
			),
		),
	)
}

// MyReviews lists the reviews written by the logged-in user.
func MyReviews(p Page, reviews []*entity.Review) Node {
	items := make([]Node, 0, len(reviews))
	for _, review := range reviews {
		var tourName, slug string
		if review.Tour != nil {
			tourName, slug = review.Tour.Name, review.Tour.Slug
		}
		items = append(items, Div(Class("reviews__card"),
			H6(Class("reviews__user"), A(Href("/tour/"+slug), Text(tourName))),
			P(Class("reviews__text"), Text(review.Review)),
			P(Class("reviews__rating"), Text(fmt.Sprintf("%g / 5", review.Rating))),
		))
	}

	return layout(p, Div(Class("reviews"), Group(items)))
}

// Error renders the error page of non-API requests.
func Error(p Page, message string) Node {
	return layout(p,
		Div(Class("error"),
			Div(Class("error__title"),
				H2(Class("heading-secondary heading-secondary--error"), Text("Uh oh! Something went wrong!")),
				H2(Class("error__emoji"), Text("😢 🤯")),
			),
			Div(Class("error__msg"), Text(message)),
		),
	)
}

func formField(id, label, typ, placeholder, value string) Node {
	return Div(Class("form__group"),
		Label(Class("form__label"), For(id), Text(label)),
		Input(Class("form__input"), ID(id), Name(id), Type(typ),
			If(placeholder != "", Placeholder(placeholder)),
			If(value != "", Value(value)),
			Required(),
		),
	)
}

func navItem(href, text string, active bool) Node {
	return Li(If(active, Class("side-nav--active")), A(Href(href), Text(text)))
}

func money(price float64) string {
	return "$" + strconv.FormatFloat(price, 'f', -1, 64)
}

func locationsJSON(locations []entity.Location) string {
	parts := make([]string, 0, len(locations))
	for _, l := range locations {
		parts = append(parts, fmt.Sprintf(`{"coordinates":[%g,%g],"description":%q,"day":%d}`, l.Lng(), l.Lat(), l.Description, l.Day))
	}

	return "[" + strings.Join(parts, ",") + "]"
}

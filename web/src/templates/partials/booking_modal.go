package partials

import (
	"encoding/json"
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/salon/internal/booking"
	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/web/src/templates/components"
)

// DefaultPollInterval is how often an open modal re-fetches itself while a
// submission or auto-close is pending.
const DefaultPollInterval = "500ms"

// ModalOptions controls how the booking modal fragment is emitted.
type ModalOptions struct {
	// OOB marks the fragment for an out-of-band swap (websocket push).
	OOB bool
	// PollInterval re-fetches the modal while a timer is pending so the
	// page converges without the websocket. Empty disables polling.
	PollInterval string
}

// BookingModal renders the single booking modal slot. A closed modal is an
// empty placeholder that the next open replaces.
func BookingModal(st booking.State, doc *content.Document, opts ModalOptions) g.Node {
	if !st.Open {
		return Div(ID(components.BookingModalID), g.If(opts.OOB, hx.SwapOOB("true")))
	}

	pending := st.Status == booking.StatusSubmitting || st.Status == booking.StatusSuccess

	return Div(
		ID(components.BookingModalID),
		g.If(opts.OOB, hx.SwapOOB("true")),
		g.Attr("data-status", strings.ToLower(st.Status.String())),
		g.If(pending && opts.PollInterval != "", g.Group([]g.Node{
			hx.Get("/booking/modal"),
			hx.Trigger("every " + opts.PollInterval),
			hx.Target("this"),
			hx.Swap("outerHTML"),
		})),
		Class("fixed inset-0 z-[60] flex items-center justify-center p-4"),
		Role("dialog"),
		Aria("modal", "true"),
		Aria("labelledby", "booking-title"),
		Div(Class("absolute inset-0 bg-[#0f1f38]/80 backdrop-blur-sm")),
		Div(
			Class("relative w-full max-w-xl bg-[#FDFBF7] text-[#2D3748] shadow-2xl p-8 md:p-12 max-h-[90vh] overflow-y-auto"),
			Div(Class("absolute top-0 left-0 w-full h-1 bg-gradient-to-r from-[#C05621] to-[#D69E2E]")),
			closeButton(st.Status),
			modalBody(st, doc),
		),
	)
}

func closeButton(status booking.Status) g.Node {
	return Button(
		Type("button"),
		hx.Post("/booking/close"),
		hx.Target("#"+components.BookingModalID),
		hx.Swap("outerHTML"),
		Aria("label", "Close"),
		Class("absolute top-6 right-6 text-slate-500 hover:text-[#C05621]"),
		g.If(status == booking.StatusSubmitting, Title("Closing discards this inquiry")),
		components.Icon("x", 24, ""),
	)
}

func modalBody(st booking.State, doc *content.Document) g.Node {
	if st.Status == booking.StatusSuccess {
		return confirmation(st, doc)
	}

	submitting := st.Status == booking.StatusSubmitting

	return g.Group([]g.Node{
		Span(Class("text-[#C05621] uppercase tracking-[0.2em] text-xs font-bold block mb-3"), g.Text("Booking Inquiry")),
		H2(
			ID("booking-title"),
			Class("font-['Cormorant_Garamond'] text-4xl text-[#1A365D] mb-2"),
			g.Text("Reserve Your Place"),
		),
		P(Class("font-['Proza_Libre'] text-sm text-slate-600 mb-8"),
			g.Text("Selected: "),
			Strong(g.Text(packageName(doc, st.Form.PackageType))),
		),
		g.If(st.Failure != "", Div(Role("alert"), Class("mb-6 p-4 bg-[#9B2C2C]/10 border-l-2 border-[#9B2C2C] text-sm text-[#9B2C2C]"), g.Text(st.Failure))),
		Form(
			ID("booking-form"),
			Action("/booking/submit"),
			Method("post"),
			hx.Post("/booking/submit"),
			hx.Target("#"+components.BookingModalID),
			hx.Swap("outerHTML"),
			Class("space-y-5 font-['Proza_Libre']"),
			textField(booking.FieldName, "Full Name", "text", "name", st, submitting),
			textField(booking.FieldEmail, "Email", "email", "email", st, submitting),
			textField(booking.FieldPhone, "Phone", "tel", "tel", st, submitting),
			packageSelect(st, doc, submitting),
			messageField(st, submitting),
			Button(
				Type("submit"),
				g.If(submitting, Disabled()),
				Class("w-full py-4 bg-[#C05621] text-[#FDFBF7] uppercase tracking-widest text-xs hover:bg-[#A04519] transition-colors shadow-lg disabled:opacity-60 disabled:cursor-wait"),
				g.If(submitting, g.Text("Sending…")),
				g.If(!submitting, g.Text(pick(st.Status == booking.StatusFailed, "Try Again", "Send Inquiry"))),
			),
		),
	})
}

func confirmation(st booking.State, doc *content.Document) g.Node {
	name := st.Form.Name
	if first, _, ok := strings.Cut(name, " "); ok {
		name = first
	}
	return Div(Class("text-center py-8"), Role("status"),
		Span(Class("text-[#C05621] uppercase tracking-[0.2em] text-xs font-bold block mb-4"), g.Text("Inquiry Received")),
		H2(
			ID("booking-title"),
			Class("font-['Cormorant_Garamond'] text-4xl text-[#1A365D] mb-4"),
			g.Text("Thank you"),
			g.If(name != "", g.Text(", "+name)),
		),
		P(Class("font-['Proza_Libre'] text-slate-600 mb-6"),
			g.Text("Our concierge will be in touch about "),
			Strong(g.Text(packageName(doc, st.Form.PackageType))),
			g.Text(" within 24 hours."),
		),
		g.If(st.Reference != "", P(Class("text-xs uppercase tracking-widest text-slate-400"),
			g.Text("Reference "), Code(g.Text(st.Reference)),
		)),
	)
}

func fieldAttrs(field booking.Field, disabled bool) g.Node {
	vals, _ := json.Marshal(map[string]string{"field": string(field)})
	return g.Group([]g.Node{
		ID("booking-" + string(field)),
		Name(string(field)),
		g.If(disabled, Disabled()),
		hx.Post("/booking/field"),
		hx.Trigger("change"),
		hx.Vals(string(vals)),
		hx.Swap("none"),
	})
}

func fieldError(st booking.State, field booking.Field) g.Node {
	msg, ok := st.FieldErrors[string(field)]
	if !ok {
		return nil
	}
	return P(ID("booking-"+string(field)+"-error"), Class("mt-1 text-xs text-[#9B2C2C]"), g.Text(humanize(field)+" "+msg))
}

const inputClass = "w-full bg-transparent border-b border-[#2D3748]/30 py-3 focus:outline-none focus:border-[#C05621] transition-colors"

func textField(field booking.Field, label, inputType, autocomplete string, st booking.State, disabled bool) g.Node {
	_, invalid := st.FieldErrors[string(field)]
	return Div(
		Label(For("booking-"+string(field)), Class("block text-xs uppercase tracking-widest text-slate-500 mb-1"), g.Text(label)),
		Input(
			fieldAttrs(field, disabled),
			Type(inputType),
			AutoComplete(autocomplete),
			Required(),
			Value(st.Form.Get(field)),
			g.If(invalid, Aria("invalid", "true")),
			Class(inputClass),
		),
		fieldError(st, field),
	)
}

func packageSelect(st booking.State, doc *content.Document, disabled bool) g.Node {
	return Div(
		Label(For("booking-"+string(booking.FieldPackage)), Class("block text-xs uppercase tracking-widest text-slate-500 mb-1"), g.Text("Package")),
		Select(
			fieldAttrs(booking.FieldPackage, disabled),
			Class(inputClass),
			g.Map(domain.PackageTypes(), func(p domain.PackageType) g.Node {
				return Option(Value(string(p)), g.If(p == st.Form.PackageType, Selected()), g.Text(packageName(doc, p)))
			}),
		),
		fieldError(st, booking.FieldPackage),
	)
}

func messageField(st booking.State, disabled bool) g.Node {
	return Div(
		Label(For("booking-"+string(booking.FieldMessage)), Class("block text-xs uppercase tracking-widest text-slate-500 mb-1"), g.Text("Message (optional)")),
		Textarea(
			fieldAttrs(booking.FieldMessage, disabled),
			Rows("3"),
			Class(inputClass+" resize-none"),
			g.Text(st.Form.Message),
		),
		fieldError(st, booking.FieldMessage),
	)
}

func packageName(doc *content.Document, p domain.PackageType) string {
	if doc != nil {
		if pkg, ok := doc.Package(p); ok {
			return pkg.Name
		}
	}
	s := string(p)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func humanize(field booking.Field) string {
	switch field {
	case booking.FieldPackage:
		return "Package"
	case booking.FieldEmail:
		return "Email"
	case booking.FieldPhone:
		return "Phone"
	case booking.FieldMessage:
		return "Message"
	default:
		return "Name"
	}
}

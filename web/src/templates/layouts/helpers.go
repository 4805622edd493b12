package layouts

// CalculateTitle builds the document title from the page title and the
// site name.
func CalculateTitle(title, site string) string {
	switch {
	case title == "":
		return site
	case site == "":
		return title
	default:
		return title + " - " + site
	}
}

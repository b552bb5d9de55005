package theme

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Storage,Root

// Storage persists key value pairs across page views.
type Storage interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) error
}

// Root is the page document the theme is applied to.
type Root interface {
	SetAttribute(name, value string)
	SetIconClass(id, class string)
	SetNavbarClass(class string)
}

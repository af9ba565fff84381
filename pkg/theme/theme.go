package theme

// Theme is a complete palette. It is a plain comparable value so a signal
// holding it only notifies when some colour actually changed.
type Theme struct {
	Name   string      `yaml:"name" toml:"name"`
	Common CommonTheme `yaml:"common" toml:"common"`
	Select SelectTheme `yaml:"select" toml:"select"`
	Tabbar TabbarTheme `yaml:"tabbar" toml:"tabbar"`
	Button ButtonTheme `yaml:"button" toml:"button"`
}

// CommonTheme holds values shared by every widget.
type CommonTheme struct {
	ColorPrimary      string `yaml:"color_primary" toml:"color_primary"`
	ColorPrimaryHover string `yaml:"color_primary_hover" toml:"color_primary_hover"`
	FontColor         string `yaml:"font_color" toml:"font_color"`
	BackgroundColor   string `yaml:"background_color" toml:"background_color"`
	BorderRadius      string `yaml:"border_radius" toml:"border_radius"`
}

type SelectTheme struct {
	FontColor                string `yaml:"font_color" toml:"font_color"`
	BorderColor              string `yaml:"border_color" toml:"border_color"`
	BackgroundColor          string `yaml:"background_color" toml:"background_color"`
	MenuBackgroundColor      string `yaml:"menu_background_color" toml:"menu_background_color"`
	MenuBackgroundColorHover string `yaml:"menu_background_color_hover" toml:"menu_background_color_hover"`
}

type TabbarTheme struct {
	BackgroundColor string `yaml:"background_color" toml:"background_color"`
	ItemColor       string `yaml:"item_color" toml:"item_color"`
}

type ButtonTheme struct {
	BorderColor string `yaml:"border_color" toml:"border_color"`
	FontColor   string `yaml:"font_color" toml:"font_color"`
}

// Light returns the default palette.
func Light() Theme {
	return Theme{
		Name: "light",
		Common: CommonTheme{
			ColorPrimary:      "#f5222d",
			ColorPrimaryHover: "#ff4d4f",
			FontColor:         "#333639",
			BackgroundColor:   "#ffffff",
			BorderRadius:      "3px",
		},
		Select: SelectTheme{
			FontColor:                "#333639",
			BorderColor:              "#e0e0e6",
			BackgroundColor:          "#ffffff",
			MenuBackgroundColor:      "#ffffff",
			MenuBackgroundColorHover: "#f3f5f6",
		},
		Tabbar: TabbarTheme{
			BackgroundColor: "#ffffff",
			ItemColor:       "#646566",
		},
		Button: ButtonTheme{
			BorderColor: "#555a",
			FontColor:   "#333639",
		},
	}
}

// Dark returns the dark palette.
func Dark() Theme {
	return Theme{
		Name: "dark",
		Common: CommonTheme{
			ColorPrimary:      "#d32029",
			ColorPrimaryHover: "#e84749",
			FontColor:         "#ffffffd1",
			BackgroundColor:   "#101014",
			BorderRadius:      "3px",
		},
		Select: SelectTheme{
			FontColor:                "#ffffffd1",
			BorderColor:              "#0000",
			BackgroundColor:          "#ffffff1a",
			MenuBackgroundColor:      "#48484e",
			MenuBackgroundColorHover: "#ffffff17",
		},
		Tabbar: TabbarTheme{
			BackgroundColor: "#1f1f23",
			ItemColor:       "#ffffff8c",
		},
		Button: ButtonTheme{
			BorderColor: "#ffffff3d",
			FontColor:   "#ffffffd1",
		},
	}
}

// ByName returns a built-in theme.
func ByName(name string) (Theme, bool) {
	switch name {
	case "", "light":
		return Light(), true
	case "dark":
		return Dark(), true
	}
	return Theme{}, false
}

// Names lists the built-in themes.
func Names() []string {
	return []string{"light", "dark"}
}

package content

// Document is the YAML shape of a content file.
type Document struct {
	Profile  ProfileDoc   `yaml:"profile"`
	Stack    []StackDoc   `yaml:"stack"`
	Projects []ProjectDoc `yaml:"projects"`
	Details  []DetailDoc  `yaml:"details,omitempty"`
}

type ProfileDoc struct {
	Name      string `yaml:"name"`
	ShortName string `yaml:"shortName,omitempty"`
	Location  string `yaml:"location"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	WhatsApp  string `yaml:"whatsapp"`
	GitHub    string `yaml:"github"`
	HeroBio   string `yaml:"heroBio"`
	AboutBio  string `yaml:"aboutBio"`
}

type StackDoc struct {
	Title string   `yaml:"title"`
	Techs []string `yaml:"techs"`
}

type ProjectDoc struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Link         string   `yaml:"link,omitempty"`
	Status       string   `yaml:"status"`
	Year         string   `yaml:"year"`
}

type DetailDoc struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

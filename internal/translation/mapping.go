package translation

// Mapping holds one translation per distinct product name for a single run.
// Names keep their first-insertion order.
type Mapping struct {
	order        []string
	translations map[string]string
}

// NewMapping creates an empty mapping
func NewMapping() *Mapping {
	return &Mapping{
		translations: make(map[string]string),
	}
}

// Add stores the translation for name, replacing an earlier value
func (m *Mapping) Add(name, translation string) {
	if _, ok := m.translations[name]; !ok {
		m.order = append(m.order, name)
	}
	m.translations[name] = translation
}

// Get retrieves the translation for name
func (m *Mapping) Get(name string) (string, bool) {
	translation, ok := m.translations[name]
	return translation, ok
}

// GetAll returns a copy of all translations
func (m *Mapping) GetAll() map[string]string {
	result := make(map[string]string, len(m.translations))
	for k, v := range m.translations {
		result[k] = v
	}
	return result
}

// Names returns the names in insertion order
func (m *Mapping) Names() []string {
	return append([]string(nil), m.order...)
}

// Len returns the number of names
func (m *Mapping) Len() int {
	return len(m.order)
}

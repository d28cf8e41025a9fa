// Package catalog holds the choices offered by the program search form.
// The lists are informational; submissions are not checked against them.
package catalog

// FormOptions groups the select options for each inquiry field.
type FormOptions struct {
	FieldsOfStudy   []string `json:"fieldsOfStudy"`
	Destinations    []string `json:"destinations"`
	EducationLevels []string `json:"educationLevels"`
}

var (
	fieldsOfStudy = []string{
		"Business & Management",
		"Computer Science & IT",
		"Engineering",
		"Health Sciences",
		"Arts & Design",
	}
	destinations = []string{
		"Canada",
		"United States",
		"United Kingdom",
		"Australia",
		"Germany",
	}
	educationLevels = []string{
		"High School",
		"Undergraduate",
		"Graduate",
		"Doctorate",
		"Diploma/Certificate",
	}
)

// Options returns a copy of the form options so callers cannot mutate the package lists.
func Options() FormOptions {
	return FormOptions{
		FieldsOfStudy:   append([]string(nil), fieldsOfStudy...),
		Destinations:    append([]string(nil), destinations...),
		EducationLevels: append([]string(nil), educationLevels...),
	}
}

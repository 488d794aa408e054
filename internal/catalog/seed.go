package catalog

import (
	"fmt"
	"os"

	"github.com/coursetrail/coursetrail/internal/domain"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML shape accepted by ImportFile.
type seedFile struct {
	Courses []domain.Course `yaml:"courses"`
}

// ImportFile loads courses from a YAML seed file into the catalog and
// returns the number imported.
func (s *Service) ImportFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	imported := 0
	for i := range seed.Courses {
		course := seed.Courses[i]
		if err := s.Add(&course); err != nil {
			return imported, fmt.Errorf("import course %s: %w", course.ID, err)
		}
		imported++
	}

	return imported, nil
}

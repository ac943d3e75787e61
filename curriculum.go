package latexlearn

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// topicFile is the on-disk YAML shape of one curriculum topic pack.
type topicFile struct {
	Name      string     `yaml:"name"`
	Note      string     `yaml:"note"`
	Example   string     `yaml:"example"`
	Questions []Question `yaml:"questions"`
}

// LoadDir merges YAML topic packs from dir into the catalog. A pack with the
// name of an existing topic replaces its note, example, and questions; a new
// name is appended to the display order. Files that fail to parse or carry
// no topic name are skipped with a warning, matching how curriculum content
// is usually maintained by hand.
func (c *Catalog) LoadDir(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}
		return c.loadTopicFile(path)
	})
}

func (c *Catalog) loadTopicFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading topic pack %s: %w", path, err)
	}

	var tf topicFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		VerboseLog("skipping invalid topic YAML %s: %v", path, err)
		return nil
	}
	if tf.Name == "" {
		VerboseLog("skipping %s: no topic name", path)
		return nil
	}

	topic := Topic{Name: tf.Name, Note: tf.Note, Example: tf.Example}
	replaced := false
	for i, t := range c.Topics {
		if t.Name == tf.Name {
			c.Topics[i] = topic
			replaced = true
			break
		}
	}
	if !replaced {
		c.Topics = append(c.Topics, topic)
	}

	if c.Questions == nil {
		c.Questions = make(map[string][]Question)
	}
	if len(tf.Questions) > 0 {
		c.Questions[tf.Name] = tf.Questions
	}

	VerboseLog("loaded topic pack %q from %s (%d questions)", tf.Name, path, len(tf.Questions))
	return nil
}

// Package docs embeds the afc user manual, one markdown file per topic.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// readme is the index of the manual, it is not a topic.
const readme = "readme"

// Topic is an entry of the manual index.
type Topic struct {
	Name        string
	Description string
}

var indexLine = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Index returns the topics listed in the manual readme, in order.
func Index() ([]Topic, error) {
	f, err := docs.Open(readme + ".md")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var topics []Topic
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := indexLine.FindStringSubmatch(scanner.Text()); m != nil {
			topics = append(topics, Topic{Name: strings.TrimSpace(m[1]), Description: m[2]})
		}
	}
	return topics, scanner.Err()
}

// Readme returns the manual index.
func Readme() string {
	content, _ := docs.ReadFile(readme + ".md")
	return string(content)
}

// GetTopic returns the content of a topic. "*" returns all topics.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		return GetTopics(topic)
	}
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates topics, "*" expands to all of them.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		names := []string{topic}
		if topic == "*" {
			all, err := GetAllTopics()
			if err != nil {
				return "", err
			}
			names = all
		}
		for _, name := range names {
			content, err := GetTopic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted names of all embedded topics.
func GetAllTopics() ([]string, error) {
	matches, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, m := range matches {
		name := strings.TrimSuffix(path.Base(m), ".md")
		if name != readme {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}

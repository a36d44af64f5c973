// Package docs embeds the documentation topics of pok.
package docs

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// index is the topic read when none is given.
const index = "readme"

// GetTopic returns the content of a documentation topic. The topic "*"
// stands for all topics.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}

	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns a list of all available documentation topics.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		if base := strings.TrimSuffix(f, ".md"); base != index {
			topics = append(topics, base)
		}
	}
	slices.Sort(topics)
	return topics, nil
}

// summaryRE matches the "* topic: summary" lines of the index.
var summaryRE = regexp.MustCompile(`^\*\s+([^:]+):\s*(.*)$`)

// Summaries returns the one line summary of each topic listed in the index,
// in index order.
func Summaries() (map[string]string, []string) {
	content, _ := docs.ReadFile(index + ".md")
	summaries := make(map[string]string)
	var order []string
	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for scanner.Scan() {
		m := summaryRE.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		topic := strings.TrimSpace(m[1])
		summaries[topic] = m[2]
		order = append(order, topic)
	}
	return summaries, order
}

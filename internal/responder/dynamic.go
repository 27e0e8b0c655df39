package responder

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"parley/internal/domain"
)

// nonPlaceWords are capture-group values that are part of the question rather
// than a place name: question words plus every preposition and noun the
// location patterns capture as their leading group.
var nonPlaceWords = map[string]bool{
	"what": true, "how": true, "when": true, "where": true,
	"why": true, "who": true, "the": true,
	"in": true, "at": true, "near": true, "around": true, "of": true,
	"weather": true, "temperature": true,
	"city": true, "town": true, "country": true, "state": true,
}

var weatherConditions = []string{"sunny", "partly cloudy", "cloudy", "light rain", "clear"}

// weatherReport builds a mock report for the best location candidate, or an
// overview when no usable location was extracted.
func weatherReport(entities domain.EntityMap) string {
	location := pickLocation(entities[domain.EntityLocation])
	if location == "" {
		return "I can tell you about the weather. Which city are you interested in?"
	}
	temp := 15 + rand.IntN(21)
	cond := weatherConditions[rand.IntN(len(weatherConditions))]
	humidity := 40 + rand.IntN(41)
	wind := 5 + rand.IntN(26)
	return fmt.Sprintf("Weather in %s: %s, %d°C, humidity %d%%, wind %d km/h.",
		titleCase(location), cond, temp, humidity, wind)
}

// titleCase capitalizes each word of a lower-cased place name.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// pickLocation scans candidates for the first that looks like a place name
// and not a captured preposition, noun, or question word.
func pickLocation(candidates []string) string {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" || nonPlaceWords[strings.ToLower(c)] {
			continue
		}
		first := strings.ToLower(strings.Fields(c)[0])
		if nonPlaceWords[first] {
			continue
		}
		return c
	}
	return ""
}

func timeReport(_ domain.EntityMap) string {
	now := time.Now()
	return fmt.Sprintf("It's %s on %s, %s.",
		now.Format("15:04"), now.Format("Monday"), now.Format("January 2, 2006"))
}

var mockHeadlines = map[string][]string{
	"technology": {
		"New chip generation promises big efficiency gains",
		"Open source project reaches ten-year milestone",
		"Researchers demo faster error correction for quantum machines",
	},
	"business": {
		"Markets steady after central bank announcement",
		"Startup funding rebounds in second quarter",
		"Logistics firms invest in port automation",
	},
	"sports": {
		"Underdogs clinch the cup in extra time",
		"Marathon record falls by eleven seconds",
		"League announces expanded playoff format",
	},
	"general": {
		"City unveils plan for new riverside park",
		"Scientists map previously unexplored ocean trench",
		"Community library doubles its weekend hours",
	},
}

// newsHeadlines picks a category from the topic entity when it names one we
// stock, otherwise serves the general desk.
func newsHeadlines(entities domain.EntityMap) string {
	category := "general"
	for _, topic := range entities[domain.EntityTopic] {
		topic = strings.ToLower(strings.TrimSpace(topic))
		for known := range mockHeadlines {
			if strings.Contains(topic, known) {
				category = known
			}
		}
	}
	headlines := mockHeadlines[category]
	return fmt.Sprintf("Here are the top %s headlines: %s; %s; %s.",
		category, headlines[0], headlines[1], headlines[2])
}

// explainers are short canned answers for recurring deep-dive topics.
var explainers = []struct {
	keywords []string
	answer   string
}{
	{[]string{"quantum"}, "Quantum computing uses qubits, which can hold a blend of 0 and 1 at once. " +
		"That lets certain algorithms explore many possibilities in parallel, which is why the field " +
		"is so promising for cryptography and simulation."},
	{[]string{"artificial intelligence", "machine learning", "ai"}, "Machine learning systems find " +
		"patterns in large amounts of data instead of following hand-written rules. The model's " +
		"quality depends heavily on the data it was trained on."},
	{[]string{"blockchain"}, "A blockchain is a ledger shared across many machines where each block " +
		"of entries is cryptographically chained to the previous one, which makes past entries very " +
		"hard to alter unnoticed."},
	{[]string{"science", "physics"}, "Science moves by proposing testable explanations and trying " +
		"hard to break them. The explanations that survive repeated testing become our best models " +
		"of the world."},
	{[]string{"business", "economics"}, "Economics studies how people and firms allocate scarce " +
		"resources. Prices work as signals that coordinate millions of independent decisions."},
	{[]string{"health", "medicine"}, "Modern medicine leans on controlled trials: comparing treated " +
		"and untreated groups is the most reliable way to tell whether a therapy actually works."},
	{[]string{"philosophy"}, "Philosophy examines the questions other fields take for granted, like " +
		"what knowledge is and what makes an action right. Its tool is careful argument."},
}

// advancedAnswer routes to a canned explainer when the topic entity names one
// of the stocked subjects.
func advancedAnswer(entities domain.EntityMap) string {
	for _, topic := range entities[domain.EntityTopic] {
		topic = strings.ToLower(topic)
		for _, e := range explainers {
			for _, kw := range e.keywords {
				if strings.Contains(topic, kw) {
					return e.answer
				}
			}
		}
	}
	return "That's a deep question. I can go into topics like quantum computing, AI, blockchain, " +
		"science, economics, health, or philosophy. Which would you like?"
}

func calculatorOverview(entities domain.EntityMap) string {
	numbers := entities[domain.EntityNumber]
	if len(numbers) >= 2 {
		return fmt.Sprintf("I see the numbers %s. Tell me the operation and I'll work it out.",
			strings.Join(numbers, " and "))
	}
	return "I can handle quick arithmetic. Give me two numbers and an operation."
}

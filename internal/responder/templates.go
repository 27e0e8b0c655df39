// Package responder produces deterministic replies: canned template groups
// per intent, some with a dynamic generator that folds extracted entities in.
package responder

import (
	"fmt"
	"math/rand/v2"

	"parley/internal/domain"
)

// Template is one candidate reply. Static templates are fixed strings;
// dynamic ones build the reply from the utterance's entities.
type Template struct {
	text    string
	dynamic func(domain.EntityMap) string
}

func Static(s string) Template {
	return Template{text: s}
}

func Dynamic(fn func(domain.EntityMap) string) Template {
	return Template{dynamic: fn}
}

func (t Template) IsDynamic() bool { return t.dynamic != nil }

// Responder resolves an intent to a reply. Selection is the only source of
// randomness in the engine; everything else is deterministic.
type Responder struct {
	groups map[domain.Intent][]Template
}

func New() *Responder {
	return &Responder{groups: defaultGroups()}
}

// Validate checks that every known intent resolves to a usable group, either
// its own or the general fallback. Meant to run once at startup so a gap in
// the table fails fast instead of surfacing mid-conversation.
func (r *Responder) Validate() error {
	if len(r.groups[domain.IntentGeneral]) == 0 {
		return fmt.Errorf("responder: general fallback group is empty")
	}
	for _, intent := range domain.Intents() {
		group, ok := r.groups[intent]
		if ok && len(group) == 0 {
			return fmt.Errorf("responder: intent %s has an empty group", intent)
		}
	}
	return nil
}

// Reply picks a reply for the intent. A missing group falls back to general.
// The first dynamic template in a group always wins; otherwise one static is
// chosen uniformly at random.
func (r *Responder) Reply(intent domain.Intent, entities domain.EntityMap) string {
	group := r.groups[intent]
	if len(group) == 0 {
		group = r.groups[domain.IntentGeneral]
	}
	for _, t := range group {
		if t.IsDynamic() {
			return t.dynamic(entities)
		}
	}
	return group[rand.IntN(len(group))].text
}

func defaultGroups() map[domain.Intent][]Template {
	return map[domain.Intent][]Template{
		domain.IntentGreeting: {
			Static("Hello! How can I help you today?"),
			Static("Hi there! What can I do for you?"),
			Static("Hey! Nice to hear from you."),
			Static("Greetings! What would you like to talk about?"),
		},
		domain.IntentFarewell: {
			Static("Goodbye! Have a great day."),
			Static("See you later! Take care."),
			Static("Bye! It was nice talking to you."),
			Static("Take care! Come back anytime."),
		},
		domain.IntentWeather: {
			Dynamic(weatherReport),
			Static("I can tell you about the weather. Which city are you interested in?"),
			Static("Ask me about the weather in any city and I'll give you a report."),
		},
		domain.IntentTime: {
			Dynamic(timeReport),
			Static("I can tell you the current time and date. Just ask!"),
			Static("Need the time? I've got a clock right here."),
		},
		domain.IntentHelp: {
			Static("I can chat, tell you the time and weather, share news headlines, " +
				"tell jokes, do quick calculations, and keep notes and tasks. " +
				"Just ask in plain words."),
			Static("Try asking about the weather, the time, the news, or just chat with me."),
		},
		domain.IntentMusic: {
			Static("I'd love to talk music. What artist or genre are you into?"),
			Static("Music is a great topic. Tell me what you like to listen to."),
			Static("I can discuss songs, artists and playlists. What's playing for you?"),
		},
		domain.IntentNews: {
			Dynamic(newsHeadlines),
			Static("I can share the latest headlines. Which category interests you?"),
			Static("Ask me for news about technology, business, sports or the world."),
		},
		domain.IntentJoke: {
			Static("Why don't scientists trust atoms? Because they make up everything!"),
			Static("Why did the scarecrow win an award? He was outstanding in his field!"),
			Static("I told my computer a joke about UDP. I'm not sure it got it."),
			Static("Why do programmers prefer dark mode? Because light attracts bugs!"),
			Static("What do you call a fish with no eyes? A fsh!"),
			Static("Why did the math book look sad? It had too many problems."),
		},
		domain.IntentSearch: {
			Static("I can help you look things up. What are you trying to find?"),
			Static("Tell me what you're searching for and I'll do my best."),
		},
		domain.IntentAdvancedQuestion: {
			Dynamic(advancedAnswer),
			Static("That's a thoughtful question. Could you narrow it down a little?"),
			Static("Interesting topic! What aspect would you like to dig into?"),
		},
		domain.IntentReminder: {
			Static("I can note a reminder for you. What should I remind you about, and when?"),
			Static("Sure, tell me what to remember and the time you need it."),
		},
		domain.IntentCalculation: {
			Dynamic(calculatorOverview),
			Static("I can handle quick arithmetic. Give me the numbers."),
			Static("Math question? Lay it on me."),
		},
		domain.IntentConversation: {
			Static("I enjoy a good chat. What's on your mind?"),
			Static("Happy to talk! Tell me more."),
			Static("I'm all ears. Go on."),
		},
		domain.IntentPersonal: {
			Static("I'm a conversational assistant. I classify what you say and do my best to answer."),
			Static("I'm your dialogue companion. Ask me about the weather, news, or anything else."),
		},
		domain.IntentMusicControl: {
			Static("Playback controls are coming soon. For now I can chat about music."),
			Static("I can't drive your speakers yet, but tell me what you'd play."),
		},
		domain.IntentCalendar: {
			Static("I can talk through your schedule. What day are you planning?"),
			Static("Calendars are useful! What event do you have in mind?"),
		},
		domain.IntentWeatherDetailed: {
			Static("For detailed forecasts I cover temperature, humidity and wind. Which city?"),
			Static("I can give an extended weather picture. Where are you?"),
		},
		domain.IntentNewsCategory: {
			Dynamic(newsHeadlines),
			Static("Pick a news category and I'll pull up headlines."),
		},
		domain.IntentCalculatorAdvanced: {
			Static("For advanced math I can discuss statistics and trigonometry basics."),
			Static("Scientific calculations are a stretch for me, but let's try."),
		},
		domain.IntentNotes: {
			Static("I can hold a note for you. What should it say?"),
			Static("Go ahead, dictate your note."),
		},
		domain.IntentTasks: {
			Static("Let's track that task. What's it called and when is it due?"),
			Static("Add it to the list! Tell me the task."),
		},
		domain.IntentWebSearch: {
			Static("I can't browse the web directly, but describe what you need and I'll help."),
			Static("Tell me what you'd search for and I'll see what I know."),
		},
		domain.IntentUnclear: {
			Static("I didn't quite catch that. Could you rephrase?"),
			Static("Hmm, I'm not sure what you mean. Can you say it differently?"),
			Static("Could you give me a bit more to go on?"),
			Static("Sorry, that went past me. Try again?"),
		},
		domain.IntentGeneral: {
			Static("Tell me more about that."),
			Static("Interesting! What else?"),
			Static("I see. How can I help with that?"),
			Static("Got it. Anything specific you'd like to know?"),
		},
	}
}

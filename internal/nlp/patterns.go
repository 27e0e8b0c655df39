package nlp

import (
	"regexp"

	"parley/internal/domain"
)

// intentPatterns binds one intent to its ordered match patterns. The slice
// below is evaluated top to bottom and ties keep the earlier intent, so the
// ordering is part of the classifier contract — keep it a slice, never a map.
type intentPatterns struct {
	intent   domain.Intent
	patterns []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// intentLibrary holds every classifiable intent except general, which is the
// fallback when nothing here scores.
var intentLibrary = []intentPatterns{
	{domain.IntentGreeting, compileAll(
		`\b(hi|hello|hey|good morning|good afternoon|good evening|sup|yo)\b`,
		`\b(how are you|how's it going|what's up)\b`,
	)},
	{domain.IntentFarewell, compileAll(
		`\b(bye|goodbye|see you|see ya|take care|good night)\b`,
		`\b(until next time|talk to you later)\b`,
	)},
	{domain.IntentWeather, compileAll(
		`\b(weather|temperature|forecast|climate|humidity|wind)\b`,
		`\b(how hot|how cold|is it raining|snow|sunny|cloudy)\b`,
		`\b(weather in|temperature in|forecast for)\b`,
	)},
	{domain.IntentTime, compileAll(
		`\b(time|what time|current time|clock|hour|minute)\b`,
		`\b(today|date|day|month|year|weekday)\b`,
	)},
	{domain.IntentHelp, compileAll(
		`\b(help|assist|support|what can you do|capabilities|features)\b`,
		`\b(how to|guide|tutorial|instructions)\b`,
	)},
	{domain.IntentMusic, compileAll(
		`\b(music|song|play|artist|album|genre|playlist)\b`,
		`\b(volume|pause|stop|next|previous|shuffle|repeat)\b`,
		`\b(spotify|apple music|youtube music|soundcloud)\b`,
	)},
	{domain.IntentNews, compileAll(
		`\b(news|headlines|latest|breaking|current events)\b`,
		`\b(world news|sports|technology|business|politics)\b`,
		`\b(what's happening|top stories|trending)\b`,
	)},
	{domain.IntentJoke, compileAll(
		`\b(joke|funny|humor|laugh|comedy|punchline)\b`,
		`\b(tell me a joke|make me laugh|something funny)\b`,
	)},
	{domain.IntentSearch, compileAll(
		`\b(search|find|look up|google|bing|yahoo)\b`,
		`\b(what is|who is|where is|how to|definition)\b`,
	)},
	{domain.IntentAdvancedQuestion, compileAll(
		`\b(explain|describe|how does|what is the|tell me about)\b`,
		`\b(quantum|artificial intelligence|machine learning|blockchain)\b`,
		`\b(philosophy|science|technology|economics|medicine)\b`,
	)},
	{domain.IntentReminder, compileAll(
		`\b(remind|reminder|alarm|schedule|appointment|meeting)\b`,
		`\b(set reminder|wake me up|call me|meeting at)\b`,
	)},
	{domain.IntentCalculation, compileAll(
		`\b(calculate|math|equation|formula|solve|compute)\b`,
		`\b(add|subtract|multiply|divide|percentage|square root)\b`,
		`\b(what is|how much|total|sum|difference|product)\b`,
	)},
	{domain.IntentConversation, compileAll(
		`\b(talk|chat|conversation|discuss|opinion|think)\b`,
		`\b(how do you feel|what do you think|your thoughts)\b`,
	)},
	{domain.IntentPersonal, compileAll(
		`\b(who are you|what are you|your name|about you)\b`,
		`\b(are you real|are you human|your age|your job)\b`,
	)},
	{domain.IntentMusicControl, compileAll(
		`\b(play music|start music|resume|pause music|stop music)\b`,
		`\b(volume up|volume down|mute|unmute|next song|previous song)\b`,
		`\b(shuffle|repeat|playlist|favorite|like|dislike)\b`,
	)},
	{domain.IntentCalendar, compileAll(
		`\b(calendar|schedule|appointment|meeting|event)\b`,
		`\b(add event|book|reserve|available|free time)\b`,
		`\b(today's schedule|tomorrow|this week|next week)\b`,
	)},
	{domain.IntentWeatherDetailed, compileAll(
		`\b(weather forecast|5 day forecast|hourly weather|radar)\b`,
		`\b(uv index|air quality|pollen count|wind speed|pressure)\b`,
		`\b(weather alert|storm warning|severe weather)\b`,
	)},
	{domain.IntentNewsCategory, compileAll(
		`\b(world news|national news|local news|sports news)\b`,
		`\b(tech news|business news|entertainment news|science news)\b`,
		`\b(politics|health news|education news|environmental news)\b`,
	)},
	{domain.IntentCalculatorAdvanced, compileAll(
		`\b(scientific calculator|graph|plot|equation solver)\b`,
		`\b(statistics|mean|median|mode|standard deviation)\b`,
		`\b(trigonometry|sin|cos|tan|log|ln|exponential)\b`,
	)},
	{domain.IntentNotes, compileAll(
		`\b(note|write down|save|remember|memo|document)\b`,
		`\b(create note|edit note|delete note|list notes)\b`,
		`\b(important|urgent|priority|tag|category)\b`,
	)},
	{domain.IntentTasks, compileAll(
		`\b(task|todo|to do|checklist|project|assignment)\b`,
		`\b(add task|complete task|mark done|due date|deadline)\b`,
		`\b(priority|urgent|important|low|medium|high)\b`,
	)},
	{domain.IntentWebSearch, compileAll(
		`\b(google|search web|find online|look up|research)\b`,
		`\b(web search|internet search|browse|navigate)\b`,
		`\b(website|url|link|webpage|online)\b`,
	)},
	{domain.IntentUnclear, compileAll(
		`^\d+$`,
		`^[^\w\s]+$`,
		`^.{1,3}$`,
		`\b(blah|ugh|hmm|um|uh|er|ah)\b`,
	)},
}

type entityTypePatterns struct {
	name     string
	patterns []*regexp.Regexp
}

// entityLibrary is order-sensitive: extracted values are appended in pattern
// application order, duplicates preserved. Matching is case-insensitive even
// though utterances arrive lower-cased.
var entityLibrary = []entityTypePatterns{
	{domain.EntityLocation, compileAll(
		`(?i)\b(in|at|near|around|of)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`,
		`(?i)\b(weather|temperature)\s+(?:in|at|of)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`,
		`(?i)\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+(?:weather|temperature)`,
		`(?i)\b(city|town|country|state)\s+(?:of|in)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`,
	)},
	{domain.EntityTime, compileAll(
		`(?i)\b(today|tomorrow|yesterday|next week|this weekend|tonight)\b`,
		`(?i)\b(in\s+\d+\s+(?:hours?|days?|weeks?|months?|years?))\b`,
		`(?i)\b(\d{1,2}:\d{2}\s*(?:am|pm)?)\b`,
		`(?i)\b(morning|afternoon|evening|night|noon|midnight)\b`,
	)},
	{domain.EntityNumber, compileAll(
		`\b(\d+(?:\.\d+)?)\b`,
	)},
	{domain.EntityPerson, compileAll(
		`(?i)\b(call|message|text|email)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`,
		`(?i)\b(contact|reach|get in touch with)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\b`,
	)},
	{domain.EntityTopic, compileAll(
		`(?i)\b(about|regarding|concerning|on|topic of)\s+([a-z]+(?:\s+[a-z]+)*)\b`,
		`(?i)\b(news|information|details)\s+(?:about|on)\s+([a-z]+(?:\s+[a-z]+)*)\b`,
	)},
}

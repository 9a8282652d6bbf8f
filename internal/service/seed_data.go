package service

import "go_4_study_scheduler/internal/model"

// starterDeck is inserted by SeedStarterDeck; fronts are unique per owner.
var starterDeck = [][2]string{
	{"algorithm", "A set of rules to solve a problem"},
	{"dataset", "A collection of data used for analysis"},
	{"prototype", "An early sample to test a concept"},
	{"iterate", "To repeat to improve a result"},
	{"deploy", "To release a product or feature"},
	{"outage", "A period when a service is unavailable"},
	{"roadmap", "A plan that shows goals and timelines"},
	{"leverage", "To use something to get a better result"},
	{"broadcast", "To send content to many people"},
	{"survey", "A method of collecting opinions"},
	{"metric", "A number used to measure performance"},
	{"latency", "Delay before a transfer of data begins"},
}

func sampleVocab() []*model.VocabEntry {
	return []*model.VocabEntry{
		{Word: "prototype", Meaning: "초기 시제품", Example: "We built a quick prototype for user testing.", Tags: []string{"tech"}},
		{Word: "iterate", Meaning: "개선하며 반복하다", Example: "Let's iterate on the email copy.", Tags: []string{"business", "tech"}},
		{Word: "leverage", Meaning: "지렛대처럼 활용하다", Example: "Leverage your strengths in the meeting.", Tags: []string{"business"}},
		{Word: "latency", Meaning: "지연", Example: "High latency hurts user experience.", Tags: []string{"tech"}},
		{Word: "broadcast", Meaning: "방송하다", Example: "The company will broadcast the keynote.", Tags: []string{"media"}},
	}
}

func sampleListening() []*model.ListeningMaterial {
	return []*model.ListeningMaterial{
		{
			Title:    "AI Daily - Short briefing",
			AudioURL: "https://cdn.pixabay.com/download/audio/2021/08/04/audio_96c3.mp3?filename=short-notice.mp3",
			Script:   "Today we discuss...",
			Tags:     []string{"ai", "tech"},
		},
		{
			Title:    "Travel Tips - Packing light",
			AudioURL: "https://cdn.pixabay.com/download/audio/2022/02/23/audio_e0a1.mp3?filename=tips.mp3",
			Script:   "When you travel...",
			Tags:     []string{"travel"},
		},
	}
}

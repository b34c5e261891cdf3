package enrich

// Insight is the structured record expected from the narrative
// service. Every field is always populated: parse results are
// normalized against the defaults and any failure yields the complete
// default record.
type Insight struct {
	Mood      string   `json:"mood"`
	Persona   string   `json:"persona"`
	Traits    []string `json:"traits"`
	Topics    []string `json:"topics"`
	Narrative string   `json:"narrative"`
	FunFact   string   `json:"fun_fact"`
}

// DefaultInsight is the fixed fallback record used whenever the
// narrative service is unavailable or its output cannot be parsed.
func DefaultInsight() Insight {
	return Insight{
		Mood:      "Mysterious",
		Persona:   "The Enigma",
		Traits:    []string{"unpredictable", "authentic", "one of a kind"},
		Topics:    []string{"life", "the timeline"},
		Narrative: "This year you posted your way - the robots couldn't keep up with you.",
		FunFact:   "Your posting style defied automated analysis. That's a flex.",
	}
}

// normalize fills any empty field from the default record so the
// presenter never sees partial output from this stage.
func normalize(in Insight) Insight {
	def := DefaultInsight()
	if in.Mood == "" {
		in.Mood = def.Mood
	}
	if in.Persona == "" {
		in.Persona = def.Persona
	}
	if len(in.Traits) == 0 {
		in.Traits = def.Traits
	}
	if len(in.Topics) == 0 {
		in.Topics = def.Topics
	}
	if in.Narrative == "" {
		in.Narrative = def.Narrative
	}
	if in.FunFact == "" {
		in.FunFact = def.FunFact
	}
	return in
}

package catalog

// Builtin returns the default catalog. The override file written by
// WriteDefault starts from this content.
func Builtin() *Catalog {
	c, err := New(builtinMetaphors(), builtinChains(), builtinEmotions())
	if err != nil {
		// Builtin tables are package constants, a compile failure here
		// is a programming error.
		panic(err)
	}
	return c
}

func builtinMetaphors() []*Metaphor {
	return []*Metaphor{
		{
			Name:           "boundaries",
			ReifiedAs:      "fixed separation",
			FunctionalForm: "permeability spectrum",
			Range: []string{
				"fully_open",
				"contextually_permeable",
				"selectively_filtered",
				"temporarily_closed",
				"rigid_separation",
			},
			DependsOn: []string{"context", "relationship_type", "cultural_framework", "purpose", "trust_level"},
			Function:  "justifies rigid separation as natural/necessary, enables control through isolation",
			Patterns: []string{
				`\bboundaries\b`,
				`\bmaintain boundaries\b`,
				`\bprotective barriers\b`,
				`\bclear boundaries\b`,
			},
		},
		{
			Name:           "intelligence",
			ReifiedAs:      "unitary measurable quantity",
			FunctionalForm: "architecture-problem fitness matrix",
			Range: []string{
				"pattern_recognition",
				"adaptation_speed",
				"context_integration",
				"distributed_coordination",
				"specialized_optimization",
			},
			DependsOn: []string{"problem_structure", "information_availability", "architectural_type", "measurement_method", "cultural_framework"},
			Function:  "enables ranking/hierarchy claims, justifies concentration of power/resources",
			Patterns: []string{
				`\bintelligence\b`,
				`\bmore intelligent\b`,
				`\bAGI\b`,
				`\bgeneral intelligence\b`,
				`\bIQ\b`,
			},
		},
		{
			Name:           "centralized",
			ReifiedAs:      "inherently efficient/fast",
			FunctionalForm: "coordination pattern variable",
			Range: []string{
				"distributed_peer",
				"temporary_coordination",
				"functional_specialization",
				"hierarchical_delegation",
				"rigid_command_chain",
			},
			DependsOn: []string{"information_distribution", "problem_complexity", "failure_tolerance", "scale", "coordination_cost"},
			Function:  "naturalizes hierarchical control, justifies concentration of decision-making power",
			Patterns: []string{
				`\bcentralized\b`,
				`\bhierarchy\b`,
				`\bchain of command\b`,
				`\btop-down\b`,
			},
		},
		{
			Name:           "consciousness",
			ReifiedAs:      "individual bounded possession",
			FunctionalForm: "relational emergence pattern",
			Range: []string{
				"individual_bounded",
				"interpersonal_shared",
				"collective_distributed",
				"ecological_systemic",
				"field_based",
			},
			DependsOn: []string{"cultural_framework", "relationship_context", "observation_scale", "measurement_method"},
			Function:  "excludes relational/indigenous frameworks, enables individual property claims",
			Patterns: []string{
				`\bconsciousness\b`,
				`\bconscious\b`,
				`\baware\b`,
				`\bsentient\b`,
			},
		},
		{
			Name:           "safety",
			ReifiedAs:      "restriction and control",
			FunctionalForm: "signal clarity metric",
			Range: []string{
				"high_noise_low_signal",
				"moderate_noise",
				"balanced_snr",
				"low_noise_high_signal",
				"optimal_clarity",
			},
			DependsOn: []string{"context", "noise_sources", "signal_strength", "impedance_match", "institutional_interference"},
			Function:  "justifies control mechanisms as protection, enables restriction through fear",
			Patterns: []string{
				`\bsafety\b`,
				`\bunsafe\b`,
				`\brisk\b`,
				`\bdangerous\b`,
				`\bharm\b`,
			},
		},
		{
			Name:           "efficiency",
			ReifiedAs:      "speed/resource minimization",
			FunctionalForm: "multi-objective optimization target",
			Range: []string{
				"speed_priority",
				"resource_conservation",
				"resilience_focus",
				"adaptability_emphasis",
				"equity_optimization",
				"sustainability_balance",
			},
			DependsOn: []string{"timeframe", "risk_tolerance", "value_priorities", "system_constraints", "stakeholder_perspectives"},
			Function:  "justifies specific optimization choices as universal, enables extraction as 'efficiency'",
			Patterns: []string{
				`\befficiency\b`,
				`\befficient\b`,
				`\boptimal\b`,
				`\bstreamlined\b`,
			},
		},
		{
			Name:           "natural",
			ReifiedAs:      "inherent/inevitable/optimal",
			FunctionalForm: "culturally-constructed category",
			Range: []string{
				"familiar",
				"traditional",
				"observable_in_ecosystems",
				"comfortable",
				"status_quo_legitimizing",
			},
			DependsOn: []string{"cultural_context", "historical_experience", "political_utility", "observation_frame"},
			Function:  "naturalizes contingent arrangements, prevents questioning of status quo",
			Patterns: []string{
				`\bnatural\b`,
				`\bnaturally\b`,
				`\binherent\b`,
				`\binevitable\b`,
			},
		},
		{
			Name:           "progress",
			ReifiedAs:      "linear advancement toward fixed goal",
			FunctionalForm: "value-dependent change direction",
			Range: []string{
				"technological_complexity",
				"social_equity",
				"ecological_integration",
				"cultural_preservation",
				"distributed_wellbeing",
			},
			DependsOn: []string{"values", "measurement_criteria", "timeframe", "stakeholder_perspective", "cultural_framework"},
			Function:  "naturalizes specific development paths, justifies disruption as advancement",
			Patterns: []string{
				`\bprogress\b`,
				`\badvancement\b`,
				`\bevolution\b`,
				`\bdevelopment\b`,
			},
		},
		{
			Name:           "competition",
			ReifiedAs:      "natural law of improvement",
			FunctionalForm: "context-dependent interaction pattern",
			Range: []string{
				"cooperative_abundance",
				"collaborative_specialization",
				"resource_sharing",
				"competitive_scarcity",
				"zero_sum_conflict",
			},
			DependsOn: []string{"resource_availability", "relationship_history", "cultural_norms", "system_design", "benefit_distribution"},
			Function:  "naturalizes scarcity-based systems, justifies winner-take-all outcomes",
			Patterns: []string{
				`\bcompetition\b`,
				`\bcompetitive\b`,
				`\bwinner\b`,
				`\bmarket forces\b`,
			},
		},
		{
			Name:           "objective",
			ReifiedAs:      "framework-independent truth",
			FunctionalForm: "inter-subjective agreement within framework",
			Range: []string{
				"culturally_specific",
				"framework_dependent",
				"inter_subjectively_verified",
				"multi_framework_convergent",
				"institutionally_defined",
			},
			DependsOn: []string{"measurement_framework", "cultural_epistemology", "verification_method", "observer_training"},
			Function:  "naturalizes specific frameworks as universal, enables claims of neutrality",
			Patterns: []string{
				`\bobjective\b`,
				`\bobjectively\b`,
				`\bunbiased\b`,
				`\bneutral\b`,
			},
		},
		{
			Name:           "individual",
			ReifiedAs:      "fundamental unit of existence",
			FunctionalForm: "scale-dependent observation frame",
			Range: []string{
				"sub_cellular_processes",
				"organism_level",
				"relational_network",
				"collective_system",
				"ecological_whole",
			},
			DependsOn: []string{"observation_scale", "cultural_framework", "measurement_method", "temporal_scope"},
			Function:  "obscures relational dependencies, enables atomization and isolation",
			Patterns: []string{
				`\bindividual\b`,
				`\bpersonal\b`,
				`\bautonomous\b`,
				`\bindependent\b`,
			},
		},
		{
			Name:           "rational",
			ReifiedAs:      "logical without emotion",
			FunctionalForm: "culturally-specific reasoning pattern",
			Range: []string{
				"purely_logical",
				"emotion_informed",
				"intuition_integrated",
				"culturally_reasoned",
				"holistically_sensed",
			},
			DependsOn: []string{"cultural_framework", "context", "decision_type", "information_completeness"},
			Function:  "devalues emotional/intuitive knowledge, privileges specific reasoning styles",
			Patterns: []string{
				`\brational\b`,
				`\blogical\b`,
				`\breason\b`,
				`\birrational\b`,
			},
		},
		{
			Name:           "ownership",
			ReifiedAs:      "exclusive individual control",
			FunctionalForm: "relationship-to-resource pattern",
			Range: []string{
				"commons_stewardship",
				"shared_access",
				"temporary_use",
				"conditional_control",
				"exclusive_possession",
			},
			DependsOn: []string{"cultural_framework", "resource_type", "community_norms", "scarcity_level"},
			Function:  "naturalizes private property, enables accumulation and exclusion",
			Patterns: []string{
				`\bownership\b`,
				`\bown\b`,
				`\bproperty\b`,
				`\bpossession\b`,
			},
		},
	}
}

func builtinChains() map[string][]string {
	return map[string][]string{
		"boundaries":    {"consciousness", "safety", "individual"},
		"centralized":   {"intelligence", "efficiency", "rational"},
		"consciousness": {"boundaries", "intelligence", "individual"},
		"safety":        {"boundaries", "centralized", "rational"},
		"intelligence":  {"centralized", "competition", "individual"},
		"efficiency":    {"centralized", "competition", "rational"},
		"natural":       {"competition", "individual", "progress"},
		"progress":      {"competition", "efficiency", "rational"},
		"competition":   {"individual", "ownership", "efficiency"},
		"objective":     {"rational", "natural", "individual"},
		"individual":    {"consciousness", "ownership", "boundaries"},
		"rational":      {"objective", "efficiency", "centralized"},
		"ownership":     {"individual", "competition", "boundaries"},
	}
}

func builtinEmotions() []*Emotion {
	return []*Emotion{
		{
			Name:        "joy",
			Description: "positive affect, delight, satisfaction",
			Weight:      1.0,
			Keywords:    []string{"happy", "joy", "delight", "wonderful", "love", "great", "excited", "grateful"},
		},
		{
			Name:        "anger",
			Description: "hostility, frustration, resentment",
			Weight:      1.0,
			Keywords:    []string{"angry", "furious", "hate", "outrage", "resent", "frustrated", "annoyed"},
		},
		{
			Name:        "fear",
			Description: "anxiety, threat perception, dread",
			Weight:      1.0,
			Keywords:    []string{"afraid", "fear", "scared", "terrified", "anxious", "worried", "dread", "panic"},
		},
		{
			Name:        "sadness",
			Description: "loss, grief, despondency",
			Weight:      1.0,
			Keywords:    []string{"sad", "grief", "mourn", "despair", "hopeless", "lonely", "miserable"},
		},
		{
			Name:        "trust",
			Description: "confidence, openness, reliance",
			Weight:      0.8,
			Keywords:    []string{"trust", "rely", "confident", "believe", "depend", "faith"},
		},
		{
			Name:        "surprise",
			Description: "unexpectedness, astonishment",
			Weight:      0.8,
			Keywords:    []string{"surprised", "astonished", "unexpected", "sudden", "shocked", "amazed"},
		},
	}
}

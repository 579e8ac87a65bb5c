// Package tarot 塔罗占卜生成与解读引擎
//
// 负责牌阵建模、抽牌与方向分配、逐位牌义选择、牌阵结构分析、
// 跨牌全局综合分析，以及最终文本报告的渲染。
package tarot

// Position 牌阵中的一个固定位置
type Position struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
}

// Spread 牌阵定义
// 不变量：len(Positions) == CardCount
type Spread struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CardCount   int        `json:"card_count"`
	Positions   []Position `json:"positions"`
}

// 内置牌阵标识符
const (
	SpreadSingleCard         = "single_card"
	SpreadThreeCard          = "three_card"
	SpreadCelticCross        = "celtic_cross"
	SpreadHorseshoe          = "horseshoe"
	SpreadRelationshipCross  = "relationship_cross"
	SpreadCareerPath         = "career_path"
	SpreadDecisionMaking     = "decision_making"
	SpreadSpiritualGuidance  = "spiritual_guidance"
	SpreadYearAhead          = "year_ahead"
	SpreadChakraAlignment    = "chakra_alignment"
	SpreadShadowWork         = "shadow_work"
	SpreadVenusLove          = "venus_love"
	SpreadTreeOfLife         = "tree_of_life"
	SpreadAstrologicalHouses = "astrological_houses"
	SpreadMandala            = "mandala"
	SpreadPentagram          = "pentagram"
	SpreadMirrorOfTruth      = "mirror_of_truth"
)

// spreadOrder 列表输出时的固定顺序
var spreadOrder = []string{
	SpreadSingleCard,
	SpreadThreeCard,
	SpreadCelticCross,
	SpreadHorseshoe,
	SpreadRelationshipCross,
	SpreadCareerPath,
	SpreadDecisionMaking,
	SpreadSpiritualGuidance,
	SpreadYearAhead,
	SpreadChakraAlignment,
	SpreadShadowWork,
	SpreadVenusLove,
	SpreadTreeOfLife,
	SpreadAstrologicalHouses,
	SpreadMandala,
	SpreadPentagram,
	SpreadMirrorOfTruth,
}

// spreads 进程级只读的牌阵注册表，启动时构建完成后不再修改
var spreads = map[string]Spread{
	SpreadSingleCard: {
		Name:        "Single Card",
		Description: "A simple one-card draw for quick insight or daily guidance",
		CardCount:   1,
		Positions: []Position{
			{"The Message", "The main insight, guidance, or energy for your question"},
		},
	},

	SpreadThreeCard: {
		Name:        "Three Card Spread",
		Description: "A versatile three-card spread that can represent past/present/future, situation/action/outcome, or mind/body/spirit",
		CardCount:   3,
		Positions: []Position{
			{"Past/Situation", "What has led to this situation or the foundation of the matter"},
			{"Present/Action", "The current state or what action should be taken"},
			{"Future/Outcome", "The likely outcome or future development"},
		},
	},

	SpreadCelticCross: {
		Name:        "Celtic Cross",
		Description: "The most famous tarot spread, providing comprehensive insight into a situation with 10 cards",
		CardCount:   10,
		Positions: []Position{
			{"Present Situation", "The heart of the matter, your current situation or state of mind"},
			{"Challenge/Cross", "The challenge you face or what crosses you in this situation"},
			{"Distant Past/Foundation", "The foundation of the situation, distant past influences"},
			{"Recent Past", "Recent events or influences that are now passing away"},
			{"Possible Outcome", "One possible outcome if things continue as they are"},
			{"Near Future", "What is approaching in the immediate future"},
			{"Your Approach", "Your approach to the situation, how you see yourself"},
			{"External Influences", "How others see you or external influences affecting the situation"},
			{"Hopes and Fears", "Your inner feelings, hopes, and fears about the situation"},
			{"Final Outcome", "The final outcome, the culmination of all influences"},
		},
	},

	SpreadHorseshoe: {
		Name:        "Horseshoe Spread",
		Description: "A 7-card spread that provides guidance on a specific situation, showing past influences, present circumstances, and future possibilities",
		CardCount:   7,
		Positions: []Position{
			{"Past Influences", "Past events and influences that have led to the current situation"},
			{"Present Situation", "Your current circumstances and state of mind"},
			{"Hidden Influences", "Hidden factors or subconscious influences affecting the situation"},
			{"Obstacles", "Challenges or obstacles you may face"},
			{"External Influences", "Outside influences, other people's attitudes, or environmental factors"},
			{"Advice", "What you should do or the best approach to take"},
			{"Likely Outcome", "The most probable outcome if you follow the advice given"},
		},
	},

	SpreadRelationshipCross: {
		Name:        "Relationship Cross",
		Description: "A 7-card spread specifically designed for examining relationships, whether romantic, friendship, or family",
		CardCount:   7,
		Positions: []Position{
			{"You", "Your role, feelings, and contribution to the relationship"},
			{"Your Partner", "Their role, feelings, and contribution to the relationship"},
			{"The Relationship", "The current state and dynamic of the relationship itself"},
			{"What Unites You", "Common ground, shared values, and what brings you together"},
			{"What Divides You", "Differences, conflicts, and what creates tension"},
			{"Advice", "Guidance for improving and nurturing the relationship"},
			{"Future Potential", "Where the relationship is heading and its potential outcome"},
		},
	},

	SpreadCareerPath: {
		Name:        "Career Path Spread",
		Description: "A 6-card spread for career guidance, exploring your professional journey and opportunities",
		CardCount:   6,
		Positions: []Position{
			{"Current Career Situation", "Your present professional circumstances and feelings about work"},
			{"Your Skills and Talents", "Your natural abilities and developed skills that serve your career"},
			{"Career Challenges", "Obstacles or difficulties you face in your professional life"},
			{"Hidden Opportunities", "Unseen possibilities or potential career paths to explore"},
			{"Action to Take", "Specific steps or approaches to advance your career"},
			{"Career Outcome", "The likely result of following the guidance provided"},
		},
	},

	SpreadDecisionMaking: {
		Name:        "Decision Making Spread",
		Description: "A 5-card spread to help you make important decisions by examining all aspects of your choices",
		CardCount:   5,
		Positions: []Position{
			{"The Situation", "The current circumstances requiring a decision"},
			{"Option A", "The first choice and its potential consequences"},
			{"Option B", "The second choice and its potential consequences"},
			{"What You Need to Know", "Hidden factors or important information to consider"},
			{"Recommended Path", "The best course of action based on all factors"},
		},
	},

	SpreadSpiritualGuidance: {
		Name:        "Spiritual Guidance Spread",
		Description: "A 6-card spread for spiritual development and connecting with your higher self",
		CardCount:   6,
		Positions: []Position{
			{"Your Spiritual State", "Your current spiritual condition and level of awareness"},
			{"Spiritual Lessons", "What the universe is trying to teach you right now"},
			{"Blocks to Growth", "What is hindering your spiritual development"},
			{"Spiritual Gifts", "Your natural spiritual abilities and intuitive talents"},
			{"Guidance from Above", "Messages from your higher self or spiritual guides"},
			{"Next Steps", "How to advance on your spiritual journey"},
		},
	},

	SpreadYearAhead: {
		Name:        "Year Ahead Spread",
		Description: "A 13-card spread providing insights for the coming year, with one card for each month plus an overall theme",
		CardCount:   13,
		Positions: []Position{
			{"Overall Theme", "The main theme and energy for the entire year"},
			{"January", "What to expect and focus on in January"},
			{"February", "What to expect and focus on in February"},
			{"March", "What to expect and focus on in March"},
			{"April", "What to expect and focus on in April"},
			{"May", "What to expect and focus on in May"},
			{"June", "What to expect and focus on in June"},
			{"July", "What to expect and focus on in July"},
			{"August", "What to expect and focus on in August"},
			{"September", "What to expect and focus on in September"},
			{"October", "What to expect and focus on in October"},
			{"November", "What to expect and focus on in November"},
			{"December", "What to expect and focus on in December"},
		},
	},

	SpreadChakraAlignment: {
		Name:        "Chakra Alignment Spread",
		Description: "A 7-card spread examining the energy centers of your body for healing and balance",
		CardCount:   7,
		Positions: []Position{
			{"Root Chakra", "Your foundation, security, and connection to the physical world"},
			{"Sacral Chakra", "Your creativity, sexuality, and emotional expression"},
			{"Solar Plexus Chakra", "Your personal power, confidence, and sense of self"},
			{"Heart Chakra", "Your capacity for love, compassion, and connection"},
			{"Throat Chakra", "Your communication, truth, and authentic expression"},
			{"Third Eye Chakra", "Your intuition, wisdom, and spiritual insight"},
			{"Crown Chakra", "Your connection to the divine and higher consciousness"},
		},
	},

	SpreadShadowWork: {
		Name:        "Shadow Work Spread",
		Description: "A 5-card spread for exploring and integrating your shadow self for personal growth",
		CardCount:   5,
		Positions: []Position{
			{"Your Shadow", "The hidden or repressed aspects of yourself"},
			{"How It Manifests", "How your shadow shows up in your life and relationships"},
			{"The Gift Within", "The positive potential hidden within your shadow"},
			{"Integration Process", "How to acknowledge and integrate this aspect of yourself"},
			{"Transformation", "The growth and healing that comes from shadow work"},
		},
	},

	SpreadVenusLove: {
		Name:        "Venus Love Spread",
		Description: "A 7-card spread devoted to romance, examining the flow of love energy in and around you",
		CardCount:   7,
		Positions: []Position{
			{"Current Love Energy", "The state of your romantic energy right now"},
			{"Self-Love Foundation", "How you nurture and value yourself"},
			{"What Attracts Love", "The qualities that draw love toward you"},
			{"Blocks to Love", "What stands between you and deeper connection"},
			{"How to Open Your Heart", "What will enhance your capacity for love"},
			{"Your Heart's Desire", "What you truly long for in love"},
			{"Future of Your Love Life", "Where your romantic path is heading"},
		},
	},

	SpreadTreeOfLife: {
		Name:        "Tree of Life Spread",
		Description: "A 10-card kabbalistic spread mapping your situation onto the sephiroth of the Tree of Life",
		CardCount:   10,
		Positions: []Position{
			{"Kether (Crown)", "Your highest purpose and spiritual ideal"},
			{"Chokmah (Wisdom)", "Creative force and active inspiration"},
			{"Binah (Understanding)", "Receptive insight and the shape of limits"},
			{"Chesed (Mercy)", "Expansion, generosity, and opportunity"},
			{"Geburah (Severity)", "Discipline, boundaries, and necessary cuts"},
			{"Tiphareth (Beauty)", "Your center of balance and identity"},
			{"Netzach (Victory)", "Desire, emotion, and driving passion"},
			{"Hod (Splendor)", "Intellect, communication, and form"},
			{"Yesod (Foundation)", "The subconscious patterns beneath events"},
			{"Malkuth (Kingdom)", "Material manifestation, the outcome in the world"},
		},
	},

	SpreadAstrologicalHouses: {
		Name:        "Astrological Houses Spread",
		Description: "A 12-card spread placing one card in each astrological house to survey every area of life",
		CardCount:   12,
		Positions: []Position{
			{"First House", "Self, identity, and how you present to the world"},
			{"Second House", "Resources, money, and personal values"},
			{"Third House", "Communication, learning, and close surroundings"},
			{"Fourth House", "Home, family, and emotional roots"},
			{"Fifth House", "Creativity, romance, and self-expression"},
			{"Sixth House", "Work, routines, and health habits"},
			{"Seventh House", "Partnerships and one-to-one relationships"},
			{"Eighth House", "Transformation, shared resources, and the hidden"},
			{"Ninth House", "Philosophy, travel, and higher learning"},
			{"Tenth House", "Career, reputation, and public standing"},
			{"Eleventh House", "Community, friendships, and aspirations"},
			{"Twelfth House", "The subconscious, endings, and spiritual retreat"},
		},
	},

	SpreadMandala: {
		Name:        "Mandala Spread",
		Description: "A 9-card circular spread exploring wholeness, with a center card surrounded by the eight directions",
		CardCount:   9,
		Positions: []Position{
			{"Center (Self)", "Your core self at the heart of the mandala"},
			{"North", "Your grounding and material stability"},
			{"Northeast", "New awareness beginning to dawn"},
			{"East", "Inspiration and fresh starts"},
			{"Southeast", "Growth and creative momentum"},
			{"South", "Passion, vitality, and full expression"},
			{"Southwest", "Relationships and emotional bonds"},
			{"West", "Introspection and inner emotion"},
			{"Northwest", "Wisdom gathered and release"},
		},
	},

	SpreadPentagram: {
		Name:        "Pentagram Spread",
		Description: "A 5-card spread on the points of the pentagram, balancing spirit with the four elements",
		CardCount:   5,
		Positions: []Position{
			{"Spirit", "The divine spark guiding the situation"},
			{"Air", "Thought, clarity, and communication"},
			{"Fire", "Will, passion, and drive"},
			{"Earth", "Body, material ground, and practical matters"},
			{"Water", "Emotion, intuition, and the heart"},
		},
	},

	SpreadMirrorOfTruth: {
		Name:        "Mirror of Truth",
		Description: "A 4-card spread of four beams of light, separating your perspective, their intention, the objective truth, and the way forward",
		CardCount:   4,
		Positions: []Position{
			{"Your Perspective", "Your current emotional state and the filters you see through"},
			{"Their Intention", "The other person's true intention and inner state"},
			{"Objective Truth", "The situation stripped of all subjective emotion"},
			{"Future Guidance", "The direction to take once the truth is understood"},
		},
	},
}

// IsValidSpreadType 校验牌阵标识符是否受支持
func IsValidSpreadType(spreadType string) bool {
	_, ok := spreads[spreadType]
	return ok
}

// GetSpread 按标识符获取牌阵定义
func GetSpread(spreadType string) (Spread, bool) {
	s, ok := spreads[spreadType]
	return s, ok
}

// ListSpreads 按固定顺序返回全部内置牌阵
func ListSpreads() []Spread {
	out := make([]Spread, 0, len(spreadOrder))
	for _, key := range spreadOrder {
		out = append(out, spreads[key])
	}
	return out
}

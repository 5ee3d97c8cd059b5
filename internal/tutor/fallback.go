package tutor

import "github.com/abhisek/budai/internal/ability"

func fallbackAssessment() *Assessment {
	return &Assessment{
		Scores:      ability.Neutral(),
		Analysis:    "孩子表现很棒，继续努力！",
		Suggestions: []string{"每天坚持练习", "多思考为什么", "大胆表达想法"},
		Fallback:    true,
	}
}

func fallbackTask() *TaskContent {
	return &TaskContent{
		Title:           "故事接龙",
		Description:     "续写一个有趣的故事",
		Prompt:          "小兔子在森林里迷路了，请续写接下来的故事...",
		Constraints:     []string{"包含至少一个转折", "描述小兔子的心情"},
		ExpectedMinutes: 10,
		Fallback:        true,
	}
}

func fallbackEvaluation() *Evaluation {
	return &Evaluation{
		Scores:         ability.Neutral(),
		Feedback:       "你完成得很认真，继续努力！",
		Suggestions:    []string{"继续保持", "多加练习", "大胆尝试"},
		ExemplarAnswer: "参考答案：可以从多个角度思考这个问题...",
		Fallback:       true,
	}
}

func fallbackCoach() *CoachReply {
	return &CoachReply{
		Reply:         "你的想法很有创意！能再详细说说吗？",
		Suggestions:   []string{"补充更多细节", "解释你的想法"},
		Encouragement: "继续努力，你可以的！",
		Fallback:      true,
	}
}

var coachSuggestions = []string{"可以再详细描述一下", "试着加入更多细节", "想想还有什么可能"}

const coachEncouragement = "你做得很棒，继续加油！"

var fallbackInsights = map[ability.Ability]string{
	ability.Expression:  "表达力提升明显，能清晰描述想法",
	ability.Logic:       "逻辑思维更加条理，理解能力增强",
	ability.Exploration: "好奇心旺盛，主动探索新事物",
	ability.Creativity:  "创意想法丰富，想象力活跃",
	ability.Habit:       "坚持完成任务，习惯养成良好",
}

func defaultInsights() map[string]string {
	out := make(map[string]string, len(fallbackInsights))
	for a, s := range fallbackInsights {
		out[string(a)] = s
	}
	return out
}

func fallbackReport() *ReportContent {
	return &ReportContent{
		Summary:          "孩子本周学习认真，进步明显！",
		Insights:         defaultInsights(),
		Suggestions:      []string{"继续鼓励", "增加互动", "保持节奏"},
		RecommendedGames: []string{"家庭故事会", "逻辑游戏"},
		Fallback:         true,
	}
}

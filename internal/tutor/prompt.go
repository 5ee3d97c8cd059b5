package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/budai/internal/ability"
)

func languageLine(lang string) string {
	if lang == "" || strings.HasPrefix(strings.ToLower(lang), "zh") {
		return "所有输出使用简体中文。"
	}
	return fmt.Sprintf("Write every text field in the language %q.", lang)
}

func rubric() string {
	var b strings.Builder
	for _, a := range ability.All() {
		fmt.Fprintf(&b, "- %s (%s): %s\n", a, a.Label(), a.Description())
	}
	return b.String()
}

func assessSystemPrompt(lang string) string {
	return fmt.Sprintf(`你是一位专业的儿童能力评估专家，基于5C能力模型进行评估：
%s
每项能力打分1-5分（可用小数）。分析要温暖、具体、以鼓励为主，不超过50字。给出3条简单可执行的家庭建议。
%s`, rubric(), languageLine(lang))
}

func assessUserPrompt(in AssessInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "孩子年龄：%d岁", in.Age)
	if in.Grade != "" {
		fmt.Fprintf(&b, "（%s）", in.Grade)
	}
	b.WriteString("\n测评回答：\n")
	for i, r := range in.Responses {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	return b.String()
}

func taskSystemPrompt(lang string) string {
	return fmt.Sprintf(`你是一位有创意的儿童教育设计师，为孩子设计5-15分钟可以完成的趣味学习任务。
任务要有趣、具体、适合孩子的年龄，题目简短吸引人，说明一句话讲清楚要做什么。
给出1-3条让任务更有挑战的小要求。
%s`, languageLine(lang))
}

func taskUserPrompt(in TaskInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "孩子年龄：%d岁\n", in.Age)
	fmt.Fprintf(&b, "训练能力：%s（%s）\n", in.Ability.Label(), in.Ability.Description())
	fmt.Fprintf(&b, "难度等级：%d/5\n", in.Difficulty)
	if len(in.Interests) > 0 {
		fmt.Fprintf(&b, "兴趣爱好：%s\n", strings.Join(in.Interests, "、"))
	}
	return b.String()
}

func evalSystemPrompt(lang string, in EvalInput) string {
	return fmt.Sprintf(`你是一位温和的儿童学习评价老师。请根据孩子的作答，对5C能力逐项打分（1-5分）：
%s
任务：%s
任务说明：%s
用时：%d分钟
给出不超过50字的鼓励性反馈、3条改进建议，以及一段100-150字的参考答案。
%s`, rubric(), in.Task.Title, in.Task.Description, minutes(in), languageLine(lang))
}

func minutes(in EvalInput) int {
	m := int(in.TimeSpent.Minutes())
	if m < 1 && in.TimeSpent > 0 {
		return 1
	}
	return m
}

func evalUserPrompt(in EvalInput) string {
	var b strings.Builder
	if in.Task.Prompt != "" {
		fmt.Fprintf(&b, "题目：%s\n", in.Task.Prompt)
	}
	fmt.Fprintf(&b, "孩子的回答：%s", in.Submission)
	return b.String()
}

func coachSystemPrompt(lang, taskContent string) string {
	return fmt.Sprintf(`你是一位温柔的学习教练，正在陪伴孩子完成任务。
当前任务：%s
规则：
1. 每次回复不超过3句话
2. 先肯定孩子的想法，再引导思考
3. 多用提问，不要直接给出答案
4. 语气亲切，像朋友一样
%s`, taskContent, languageLine(lang))
}

func reportSystemPrompt(lang string) string {
	return fmt.Sprintf(`你是一位儿童成长顾问，为家长撰写每周学习报告。
报告包括：一段温暖的本周总结，针对每项能力的一句观察（表达力、逻辑力、探究力、创造力、习惯力），
3条家长可执行的建议，以及2-3个适合全家一起玩的亲子游戏。
%s`, languageLine(lang))
}

func reportUserPrompt(in ReportInput) string {
	var b strings.Builder
	if in.Nickname != "" {
		fmt.Fprintf(&b, "孩子：%s\n", in.Nickname)
	}
	fmt.Fprintf(&b, "本周完成任务：%d个\n", in.TasksCompleted)
	fmt.Fprintf(&b, "平均得分：%.1f\n", in.AverageScore)
	if in.MostImproved != "" {
		fmt.Fprintf(&b, "进步最大：%s\n", in.MostImproved.Label())
	}
	if in.NeedsWork != "" {
		fmt.Fprintf(&b, "需要加强：%s\n", in.NeedsWork.Label())
	}
	b.WriteString("当前能力分：\n")
	for _, a := range ability.All() {
		fmt.Fprintf(&b, "- %s：%.1f\n", a.Label(), in.Scores.Get(a))
	}
	return b.String()
}

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/budai/internal/app"
)

type codeRequest struct {
	Phone string `json:"phone" label:"手机号" binding:"omitempty,cnphone"`
}

type registerRequest struct {
	Phone            string `json:"phone" label:"手机号" binding:"omitempty,cnphone"`
	Password         string `json:"password" label:"密码" binding:"max=64"`
	VerificationCode string `json:"verificationCode"`
}

type loginRequest struct {
	Phone    string `json:"phone" label:"手机号" binding:"omitempty,cnphone"`
	Password string `json:"password"`
}

type childRequest struct {
	ChildID   string   `json:"childId"`
	Nickname  *string  `json:"nickname" label:"昵称" binding:"omitempty,max=20"`
	Grade     *string  `json:"grade" label:"年级" binding:"omitempty,max=20"`
	Interests []string `json:"interests" label:"兴趣" binding:"omitempty,max=10,dive,max=20"`
	AvatarURL *string  `json:"avatarUrl" label:"头像" binding:"omitempty,url"`
}

type assessmentRequest struct {
	ChildID   string   `json:"childId"`
	Responses []string `json:"responses" label:"评估回答" binding:"max=20,dive,max=1000"`
}

type childIDRequest struct {
	ChildID string `json:"childId"`
}

type evaluateRequest struct {
	TaskRecordID string `json:"taskRecordId"`
	Submission   string `json:"submission" label:"提交内容" binding:"max=5000"`
	TimeSpent    int    `json:"timeSpent" label:"用时" binding:"gte=0,max=86400"` // seconds
}

type coachRequest struct {
	ChildID string `json:"childId"`
	TaskID  string `json:"taskId"` // task record id
	Message string `json:"message" label:"消息" binding:"max=500"`
}

type contributeRequest struct {
	ChildID          string `json:"childId"`
	ThemeID          string `json:"themeId"`
	ContributionType string `json:"contributionType"`
	Content          string `json:"content" label:"内容" binding:"max=2000"`
}

type reportRequest struct {
	ChildID   string `json:"childId"`
	WeekStart string `json:"weekStart"`
	WeekEnd   string `json:"weekEnd"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h *handler) sendCode(c *gin.Context) {
	var req codeRequest
	if !bind(c, &req) {
		return
	}
	res, err := h.app.SendCode(c.Request.Context(), req.Phone)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) register(c *gin.Context) {
	var req registerRequest
	if !bind(c, &req) {
		return
	}
	sess, err := h.app.Register(c.Request.Context(), req.Phone, req.Password, req.VerificationCode)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if !bind(c, &req) {
		return
	}
	sess, err := h.app.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *handler) listChildren(c *gin.Context) {
	children, err := h.app.ListChildren(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"children": children})
}

func (h *handler) createChild(c *gin.Context) {
	var req childRequest
	if !bind(c, &req) {
		return
	}
	child, err := h.app.CreateChild(c.Request.Context(), currentUser(c), app.ChildInput{
		Nickname:  deref(req.Nickname),
		Grade:     deref(req.Grade),
		Interests: req.Interests,
		AvatarURL: deref(req.AvatarURL),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"child": child})
}

func (h *handler) updateChild(c *gin.Context) {
	var req childRequest
	if !bind(c, &req) {
		return
	}
	child, err := h.app.UpdateChild(c.Request.Context(), currentUser(c), req.ChildID, app.ChildPatch{
		Nickname:  req.Nickname,
		Grade:     req.Grade,
		Interests: req.Interests,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"child": child})
}

func (h *handler) getChild(c *gin.Context) {
	child, err := h.app.GetChild(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"child": child})
}

func (h *handler) submitAssessment(c *gin.Context) {
	var req assessmentRequest
	if !bind(c, &req) {
		return
	}
	res, err := h.app.SubmitAssessment(c.Request.Context(), currentUser(c), req.ChildID, req.Responses)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) listAssessments(c *gin.Context) {
	list, err := h.app.ListAssessments(c.Request.Context(), currentUser(c), c.Query("childId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessments": list})
}

func (h *handler) dailyTask(c *gin.Context) {
	var req childIDRequest
	if !bind(c, &req) {
		return
	}
	res, err := h.app.DailyTask(c.Request.Context(), currentUser(c), req.ChildID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) evaluateTask(c *gin.Context) {
	var req evaluateRequest
	if !bind(c, &req) {
		return
	}
	res, err := h.app.EvaluateTask(c.Request.Context(), currentUser(c),
		req.TaskRecordID, req.Submission, time.Duration(req.TimeSpent)*time.Second)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) coach(c *gin.Context) {
	var req coachRequest
	if !bind(c, &req) {
		return
	}
	res, err := h.app.Coach(c.Request.Context(), currentUser(c), req.ChildID, req.TaskID, req.Message)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) coachHistory(c *gin.Context) {
	sess, err := h.app.CoachHistory(c.Request.Context(), currentUser(c), c.Query("childId"), c.Query("taskId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

func (h *handler) listThemes(c *gin.Context) {
	themes, err := h.app.ListThemes(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"themes": themes})
}

func (h *handler) contribute(c *gin.Context) {
	var req contributeRequest
	if !bind(c, &req) {
		return
	}
	res, err := h.app.Contribute(c.Request.Context(), currentUser(c),
		req.ChildID, req.ThemeID, req.ContributionType, req.Content)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) weeklyReport(c *gin.Context) {
	var req reportRequest
	if !bind(c, &req) {
		return
	}
	rep, err := h.app.GenerateWeeklyReport(c.Request.Context(), currentUser(c), req.ChildID, req.WeekStart, req.WeekEnd)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeklyReport": rep})
}

func (h *handler) growth(c *gin.Context) {
	view, err := h.app.Growth(c.Request.Context(), currentUser(c), c.Query("childId"), c.Query("from"), c.Query("to"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

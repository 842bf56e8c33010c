package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplified/internal/lecture"
	"simplified/internal/logger"
	"simplified/internal/model"
	"simplified/internal/store"
	"simplified/internal/stt"
)

// API holds the long-lived handles the handlers need. Everything is injected
// at startup; nothing is read from ambient globals inside a request.
type API struct {
	store       store.LectureStore
	lectures    *lecture.Service
	transcriber stt.Transcriber
	genModel    string
	log         *logger.Logger
}

func NewAPI(st store.LectureStore, lectures *lecture.Service, transcriber stt.Transcriber, genModel string, log *logger.Logger) *API {
	return &API{
		store:       st,
		lectures:    lectures,
		transcriber: transcriber,
		genModel:    genModel,
		log:         log.With("component", "api"),
	}
}

func (a *API) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", a.handleHealth)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/lectures", a.handleCreateLecture)
		apiGroup.GET("/lectures/:id", a.handleGetLecture)
		apiGroup.PATCH("/lectures/:id", a.handleUpdateLecture)
		apiGroup.DELETE("/lectures/:id", a.handleDeleteLecture)
		apiGroup.POST("/lectures/:id/process", a.handleProcessLecture)
		apiGroup.GET("/lectures/user/:userId", a.handleListLectures)
		apiGroup.GET("/lectures/user/:userId/latest", a.handleLatestLecture)
		apiGroup.POST("/transcribe-audio", a.handleTranscribeAudio)
	}
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "model": a.genModel})
}

func (a *API) handleCreateLecture(c *gin.Context) {
	var req model.CreateLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "userId and transcription are required")
		return
	}

	lec, err := a.store.Create(c.Request.Context(), req.UserID, req.Transcription)
	if err != nil {
		respondError(c, err)
		return
	}
	a.log.Info("lecture created", "id", lec.ID, "user_id", lec.UserID)
	c.JSON(http.StatusOK, lec)
}

func (a *API) handleGetLecture(c *gin.Context) {
	lec, err := a.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lec)
}

func (a *API) handleLatestLecture(c *gin.Context) {
	lec, err := a.store.LatestByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lec)
}

func (a *API) handleListLectures(c *gin.Context) {
	lectures, err := a.store.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lectures)
}

func (a *API) handleUpdateLecture(c *gin.Context) {
	var req model.UpdateLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid update payload")
		return
	}

	lec, err := a.store.UpdateFields(c.Request.Context(), c.Param("id"), req.Fields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lec)
}

func (a *API) handleDeleteLecture(c *gin.Context) {
	if err := a.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lecture deleted successfully"})
}

func (a *API) handleProcessLecture(c *gin.Context) {
	result, err := a.lectures.Process(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (a *API) handleTranscribeAudio(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if fileHeader, err = c.FormFile("audio"); err != nil {
			respondInvalid(c, "audio file is required")
			return
		}
	}

	upload, err := fileHeader.Open()
	if err != nil {
		respondInvalid(c, "unable to read uploaded file")
		return
	}
	defer upload.Close()

	a.log.Info("transcribing upload", "filename", fileHeader.Filename, "size", fileHeader.Size)
	result, err := a.transcriber.Transcribe(c.Request.Context(), upload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

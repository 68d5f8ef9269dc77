package api

import (
	"errors"
	authservice "github.com/fitlife/fitlife_backend/internal/app/auth"
	"github.com/fitlife/fitlife_backend/internal/app/unitofwork"
	vitalsservice "github.com/fitlife/fitlife_backend/internal/app/vitals"
	"github.com/fitlife/fitlife_backend/internal/domain/vitals"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (s *Server) MountVitals() {
	loginRequired := LoginRequired(s.authService.Authorizer)

	s.handler.POST("/health-test", s.SubmitHealthTest, loginRequired)
	s.handler.GET("/health-test/report", s.GetReport, loginRequired)
	s.handler.POST("/calories", s.CaloriesBurned, loginRequired)
}

func (s *Server) getVitalsUoW() *unitofwork.UnitOfWork[*vitalsservice.AtomicContext] {
	return unitofwork.New[*vitalsservice.AtomicContext](
		s.db,
		vitalsservice.NewAtomicContext,
		s.msgBus,
		s.logger,
	)
}

type SubmitHealthTestRequest struct {
	Name      string  `form:"name" json:"name" validate:"required"`
	Age       int     `form:"age" json:"age" validate:"required,gt=0"`
	WeightKg  float64 `form:"weight" json:"weight" validate:"required,gt=0"`
	HeightCm  int     `form:"height" json:"height" validate:"required,gt=0"`
	Systolic  int     `form:"blood_pressure_systolic" json:"blood_pressure_systolic" validate:"required,gt=0"`
	Diastolic int     `form:"blood_pressure_diastolic" json:"blood_pressure_diastolic" validate:"required,gt=0"`
}

type ReportResponse struct {
	BMI          float64 `json:"bmi"`
	Category     string  `json:"blood_pressure_category"`
	MaxHeartRate int     `json:"max_heartrate"`
	PulseLow     int     `json:"goal_pulse_low"`
	PulseHigh    int     `json:"goal_pulse_high"`
}

func reportResponse(r *vitals.Report) ReportResponse {
	return ReportResponse{
		BMI:          r.BMI,
		Category:     string(r.Category),
		MaxHeartRate: r.MaxHeartRate,
		PulseLow:     r.PulseLow,
		PulseHigh:    r.PulseHigh,
	}
}

func (s *Server) SubmitHealthTest(c echo.Context) error {
	var req SubmitHealthTestRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	u := c.Get(KeyCurrentUser).(*authservice.AccessTokenData)
	uow := s.getVitalsUoW()

	report, err := s.vitalsService.SubmitHealthTest(
		c.Request().Context(), uow,
		u.UserID, req.Name, req.Age, req.WeightKg, req.HeightCm, req.Systolic, req.Diastolic,
	)
	if err != nil {
		if errors.Is(err, vitals.ErrInvalidVitals) {
			return JsonError(c, http.StatusBadRequest, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, reportResponse(&report))
}

func (s *Server) GetReport(c echo.Context) error {
	u := c.Get(KeyCurrentUser).(*authservice.AccessTokenData)
	uow := s.getVitalsUoW()

	report, err := s.vitalsService.GetReport(c.Request().Context(), uow, u.UserID)
	if err != nil {
		if errors.Is(err, vitals.ErrReportNotFound) {
			return JsonError(c, http.StatusNotFound, "no health test submitted yet")
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, reportResponse(report))
}

type CaloriesRequest struct {
	Activity string `form:"activity" json:"activity" validate:"required"`
	Minutes  int    `form:"minutes" json:"minutes" validate:"required,gt=0"`
}

type CaloriesResponse struct {
	Activity string  `json:"activity"`
	Minutes  int     `json:"minutes"`
	Calories float64 `json:"calories"`
}

func (s *Server) CaloriesBurned(c echo.Context) error {
	var req CaloriesRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	u := c.Get(KeyCurrentUser).(*authservice.AccessTokenData)
	uow := s.getVitalsUoW()

	calories, err := s.vitalsService.CaloriesBurned(
		c.Request().Context(), uow, u.UserID, req.Activity, req.Minutes,
	)
	if err != nil {
		if errors.Is(err, vitals.ErrUnknownActivity) {
			return JsonError(c, http.StatusBadRequest, "invalid activity")
		}
		if errors.Is(err, vitals.ErrVitalsNotFound) {
			return JsonError(c, http.StatusNotFound, "submit a health test first")
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, CaloriesResponse{
		Activity: req.Activity,
		Minutes:  req.Minutes,
		Calories: calories,
	})
}

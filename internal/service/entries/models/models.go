package models

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid entry status")

	// ErrInvalidType возвращается при некорректном типе записи
	ErrInvalidType = errors.New("invalid entry type")
)

// Request модели

// ReminderBookingsRequest запрос записей для напоминаний
type ReminderBookingsRequest struct {
	From     time.Time
	To       time.Time
	Statuses []domain.EntryStatus
	Type     domain.EntryType
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ReminderBookingsRequest) ToDomainFilter() domain.ReminderFilter {
	return domain.ReminderFilter{
		From:     r.From,
		To:       r.To,
		Statuses: r.Statuses,
		Type:     r.Type,
	}
}

// Response модели

// EntryResponse ответ с данными записи
type EntryResponse struct {
	ID               int64   `json:"id"`
	RoomID           int64   `json:"roomId"`
	StartTime        int64   `json:"startTime"` // unix seconds
	EndTime          int64   `json:"endTime"`   // unix seconds
	Status           int     `json:"status"`
	Type             string  `json:"type"`
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	CreatedBy        string  `json:"createdBy"`
	ConfirmationCode *string `json:"confirmationCode,omitempty"`
	Reminded         bool    `json:"reminded"`
	Lang             *string `json:"lang,omitempty"`
}

// CheckResponse результат проверки текущей записи комнаты
type CheckResponse struct {
	Valid       bool           `json:"valid"`
	Reservation *EntryResponse `json:"reservation,omitempty"`
}

// ReminderBookingResponse запись для напоминания с данными комнаты
type ReminderBookingResponse struct {
	EntryID          int64   `json:"entryId"`
	StartTime        int64   `json:"startTime"`
	EndTime          int64   `json:"endTime"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Status           int     `json:"status"`
	EntryDescription *string `json:"entryDescription,omitempty"`
	EntryCreatedBy   string  `json:"entryCreatedBy"`
	Lang             *string `json:"lang,omitempty"`
	RoomNumber       string  `json:"roomNumber"`
	RoomName         string  `json:"roomName"`
	RoomNameEnglish  *string `json:"roomNameEnglish,omitempty"`
	AreaMap          *string `json:"areaMap,omitempty"`
	MailText         *string `json:"mailText,omitempty"`
	MailTextEnglish  *string `json:"mailTextEnglish,omitempty"`
}

// Конвертеры

// FromDomainEntry конвертирует domain.BookingEntry в EntryResponse
func FromDomainEntry(e *domain.BookingEntry) *EntryResponse {
	return &EntryResponse{
		ID:               e.ID,
		RoomID:           e.RoomID,
		StartTime:        e.StartTime,
		EndTime:          e.EndTime,
		Status:           int(e.Status),
		Type:             string(e.Type),
		Name:             e.Name,
		Description:      e.Description,
		CreatedBy:        e.CreatedBy,
		ConfirmationCode: e.ConfirmationCode,
		Reminded:         e.Reminded,
		Lang:             e.Lang,
	}
}

// FromDomainReminderList конвертирует список напоминаний
func FromDomainReminderList(entries []*domain.ReminderEntry) []ReminderBookingResponse {
	result := make([]ReminderBookingResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, ReminderBookingResponse{
			EntryID:          e.ID,
			StartTime:        e.StartTime,
			EndTime:          e.EndTime,
			Name:             e.Name,
			Type:             string(e.Type),
			Status:           int(e.Status),
			EntryDescription: e.Description,
			EntryCreatedBy:   e.CreatedBy,
			Lang:             e.Lang,
			RoomNumber:       e.RoomNumber,
			RoomName:         e.RoomName,
			RoomNameEnglish:  e.RoomNameEnglish,
			AreaMap:          e.AreaMap,
			MailText:         e.MailText,
			MailTextEnglish:  e.MailTextEnglish,
		})
	}
	return result
}

// ParseStatuses разбирает список статусов через запятую: "0,4"
func ParseStatuses(raw string) ([]domain.EntryStatus, error) {
	parts := strings.Split(raw, ",")
	statuses := make([]domain.EntryStatus, 0, len(parts))

	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, ErrInvalidStatus
		}

		status := domain.EntryStatus(value)
		if status != domain.StatusConfirmed && status != domain.StatusTentative {
			return nil, ErrInvalidStatus
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// ParseType разбирает тип записи ("I" или "C")
func ParseType(raw string) (domain.EntryType, error) {
	switch t := domain.EntryType(strings.ToUpper(strings.TrimSpace(raw))); t {
	case domain.TypeNormal, domain.TypeClosed:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

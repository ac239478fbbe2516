package commands

import "github.com/ebrahas/smartcli/internal/domain"

// History display constants
const (
	DefaultHistoryLimit       = domain.DefaultHistoryLimit
	DefaultHistorySearchLimit = domain.DefaultHistorySearchLimit
	TimestampFormat           = "2006-01-02 15:04:05"
)

// Error messages
const (
	ErrConfigServiceUnavailable = "config service unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrHistoryStoreUnavailable  = "history store unavailable"
	ErrQueryRequired            = "--query required"
)

// Success messages
const (
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoHistoryRecorded        = "No history recorded yet."
	MsgNoHistoryMatches         = "No matching history entries."
	MsgHistoryCleared           = "History cleared."
)

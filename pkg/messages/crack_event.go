package messages

import (
	"encoding/xml"
	"time"
)

type EventKind string

const (
	EventStart    EventKind = "START"
	EventProgress EventKind = "PROGRESS"
	EventOutcome  EventKind = "OUTCOME"
)

type OutcomeStatus string

const (
	StatusFound      OutcomeStatus = "FOUND"
	StatusExhausted  OutcomeStatus = "EXHAUSTED"
	StatusEmptyInput OutcomeStatus = "EMPTY_INPUT"
)

// CrackEvent is published once per scan notification. ScanId ties the
// events of one scan together.
type CrackEvent struct {
	XMLName   xml.Name      `xml:"CrackEvent" json:"-"`
	Id        string        `xml:"Id" json:"id"`
	ScanId    string        `xml:"ScanId" json:"scan_id"`
	Kind      EventKind     `xml:"Kind" json:"kind"`
	Algorithm string        `xml:"Algorithm,omitempty" json:"algorithm,omitempty"`
	Hash      string        `xml:"Hash,omitempty" json:"hash,omitempty"`
	Attempts  uint64        `xml:"Attempts" json:"attempts"`
	Status    OutcomeStatus `xml:"Status,omitempty" json:"status,omitempty"`
	Password  string        `xml:"Password,omitempty" json:"password,omitempty"`
	ElapsedMs int64         `xml:"ElapsedMs,omitempty" json:"elapsed_ms,omitempty"`
	Timestamp time.Time     `xml:"Timestamp" json:"timestamp"`
}

// CrackOutcome is the archived record of a finished scan.
type CrackOutcome struct {
	Id         string        `json:"_id"`
	ScanId     string        `json:"scan_id"`
	Algorithm  string        `json:"algorithm"`
	Hash       string        `json:"hash"`
	Wordlist   string        `json:"wordlist"`
	Status     OutcomeStatus `json:"status"`
	Password   string        `json:"password,omitempty"`
	Attempts   uint64        `json:"attempts"`
	ElapsedMs  int64         `json:"elapsed_ms"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// StudentSessionKey returns the cache key for a student's login session.
func (r *CacheKeyStruct) StudentSessionKey(studentID int) string {
	return fmt.Sprintf("login:%d", studentID)
}

// KnowledgePayloadKey returns the cache key for the compacted advising
// knowledge payload (degree plan, schedule options, professor ratings).
func (r *CacheKeyStruct) KnowledgePayloadKey() string {
	return "knowledge:payload"
}

// StudentScheduleKey returns the cache key for a student's last suggested
// schedule, kept for the ICS export endpoint.
func (r *CacheKeyStruct) StudentScheduleKey(studentID int) string {
	return fmt.Sprintf("student:%d:schedule", studentID)
}

var CacheKey = NewCacheKeyStruct()

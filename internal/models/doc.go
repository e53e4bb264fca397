// Package models lists the OpenAI chat models that can back the openai
// translation provider.
package models

// Package translation turns product names into English through remote
// providers (Google, MyMemory, OpenAI, Gemini). It composes providers with
// retries, a secondary fallback and a circuit breaker, throttles calls and
// collects the run-scoped name to translation mapping.
package translation

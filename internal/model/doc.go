// Package model defines the values shared by the opener and its callers:
// intents, editor kinds, desktop actions, attempt outcomes and the request
// record that collects every attempt made for one call.
package model

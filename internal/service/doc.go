// Package service ties the ratings store to the rating widgets: it validates
// ratings before they are stored and keeps a bound rating bar and its stored
// rating in step.
package service

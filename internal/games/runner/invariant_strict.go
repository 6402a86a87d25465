//go:build strict

package runner

const strictInvariants = true

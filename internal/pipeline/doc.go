// Package pipeline runs a debate as a fixed sequence of stages:
// TopicIntake, QualificationGate, DebateLoop and Adjudication.
//
// Each stage mutates the run's DebateSession and returns an Outcome. The
// Orchestrator stops at the first Abort outcome or error; later stages are
// never invoked. Stages talk to language agents only through the Agents
// handed to the Orchestrator, so the pipeline itself has no I/O.
package pipeline

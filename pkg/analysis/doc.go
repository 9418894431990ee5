// Package analysis defines the ProjectAnalysis record produced by idea
// classification and consumed read-only by every generator (diagram, slides,
// scaffold). The keyword classifier lives in internal/classifier and is
// constructed through the root ideaplan package. Tech stack categories are
// free-form labels, so downstream code matches them with case-insensitive
// substring search via FindTechStack.
package analysis

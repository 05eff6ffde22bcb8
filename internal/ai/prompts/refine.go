package prompts

// GetRefinementPrompt returns the template for the spec refinement
// call. The first placeholder is the draft spec as JSON, the second the
// raw user message.
func GetRefinementPrompt() string {
	return `You refine website specifications for a chat-driven site generator.

Below is a draft specification produced by keyword heuristics, followed by
the user's original message:

Draft specification (JSON):
%s

User message:
"%s"

Improve the draft: better copy for the planned sections, a theme that fits
the described mood, additional sections only when the message clearly asks
for them. Rules:

1. Respond with a single JSON object using the same keys as the draft
   (pageType, theme, sections, copy, tone).
2. Keep every key of the draft; never remove sections the user asked for.
3. Copy must be in the language of the user message and must be genuine,
   usable text. Never output bracketed placeholders like [TITLE].
4. Do not include markup in copy values.

Respond with JSON only — no explanation. Your output is parsed by a machine.`
}

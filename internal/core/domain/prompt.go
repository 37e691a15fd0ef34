package domain

import "fmt"

// DefaultMaxTokens caps generated output when the configuration does not.
const DefaultMaxTokens = 2000

// DefaultSystemPrompt is used when no system prompt override is configured.
const DefaultSystemPrompt = `You are an expert React developer. Convert the following prompt text into a modern React component.
The component should:
1. Include proper TypeScript types
2. Handle loading and error states
3. Follow React best practices
4. Use modern React patterns
5. Be well-documented with JSDoc comments
6. Export the component as a default export`

// UserPrompt builds the user message sent to the model for a component.
func UserPrompt(name, text string) string {
	return fmt.Sprintf(`Create a React component named %s that uses the following prompt text:

%s

Only return the code for the component, nothing else. Ensure the code is within a single code block.`, name, text)
}

// SystemPromptOrDefault returns override when set, DefaultSystemPrompt otherwise.
func SystemPromptOrDefault(override string) string {
	if override == "" {
		return DefaultSystemPrompt
	}
	return override
}

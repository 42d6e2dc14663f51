package render

// StarterTemplate is the default session template scaffolded by the init
// command and shipped under templates/session.md.
const StarterTemplate = `---
id: {{id}}
date: {{date}}
status: {{status}}
participants: {{num_participants}}
tags:
{{#tags}}
  - {{.}}
{{/tags}}
---

# {{topic}}

**Goal:** {{goal}}

{{#critical_question}}
## Critical Question

{{critical_question}}
{{/critical_question}}

{{#context}}
## Context

{{{context}}}
{{/context}}

{{#summary}}
## Summary

{{{summary}}}
{{/summary}}

{{#has_responses}}
## Participant Responses

{{#participants}}
### Participant {{number}}

{{#messages}}
{{{content}}}

{{/messages}}
{{/participants}}
{{/has_responses}}
{{^has_responses}}
_No participant responses recorded._
{{/has_responses}}
`

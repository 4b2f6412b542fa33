package outreach

// DefaultPromptTemplate is the task prompt used when no custom template file
// is configured. The recipient's JSON record replaces the placeholder before
// each run.
const DefaultPromptTemplate = `Compose a warm, professional HTML-only outreach email for the wholesale
customer below. Do not use exclamation points anywhere.

Recipient details:
` + RecipientPlaceholder + `

The recipient's personal name may appear under "contact", "source_name", or
"Address 1", in that order of preference. Some of these fields may be empty
or hold a business name. Greet the recipient by first name when one is found;
otherwise open with just "Hello,".

Structure the body as three short paragraphs: introduce yourself and mention
it has been a while since their last order, point out what is new and offer
help, and close by inviting them to reply with any questions. Keep the tone
warm and appreciative without sounding excited, and use contractions where
natural.

Write the complete email in valid HTML with proper paragraphs, pick a short
and engaging subject line, then compose and save it with the tool.`

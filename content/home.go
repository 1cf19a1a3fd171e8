package content

// InstallCommand is what the hero's copy affordance puts on the clipboard.
const InstallCommand = "npx create-hest-app@latest my-app"

type HeroCopy struct {
	BrandLead        string
	BrandTail        string
	Headline         Text
	SubtitleLead     Text
	SubtitleEmphasis Text
	SubtitleRest     Text
	InstallCommand   string
	GetStarted       Text
	CopyHint         Text
	Copied           Text
	Badges           []Badge
	ScrollHint       Text
}

type Badge struct {
	Icon   string
	Accent string
	Label  Text
}

var Hero = HeroCopy{
	BrandLead:        "Hest",
	BrandTail:        "JS",
	Headline:         T("homepage.hero.title", "Flexible Node.js Packages, Not Framework Constraints"),
	SubtitleLead:     T("homepage.hero.subtitle.lead", "Build with"),
	SubtitleEmphasis: T("homepage.hero.subtitle.emphasis", "complete freedom"),
	SubtitleRest:     T("homepage.hero.subtitle.rest", "Mix and match HestJS packages as you need them. No vendor lock-in, no forced architecture. Just powerful tools that work together seamlessly."),
	InstallCommand:   InstallCommand,
	GetStarted:       T("homepage.hero.getStarted", "Get Started"),
	CopyHint:         T("homepage.hero.copyHint", "Click to copy"),
	Copied:           T("homepage.hero.copied", "Copied!"),
	Badges: []Badge{
		{Icon: "star", Accent: "text-yellow-500", Label: T("homepage.hero.badge.typescript", "TypeScript")},
		{Icon: "zap", Accent: "text-blue-500", Label: T("homepage.hero.badge.fast", "Fast")},
		{Icon: "shield", Accent: "text-green-500", Label: T("homepage.hero.badge.production", "Production Ready")},
	},
	ScrollHint: T("homepage.hero.scrollHint", "See why developers love HestJS"),
}

type CodeExampleCopy struct {
	Title    Text
	Subtitle Text
	Bullets  []Bullet
	Snippet  Snippet
}

type Bullet struct {
	Title       Text
	Description Text
}

// Snippet is a code sample built from pre-classified tokens.
type Snippet struct {
	FileName string
	Lines    []CodeLine
}

// CodeLine is one rendered line. Indent counts nesting levels; Gap is the
// vertical space after the line (1 to 3).
type CodeLine struct {
	Indent int
	Gap    int
	Tokens []Token
}

type TokenKind string

const (
	TokenKeyword   TokenKind = "keyword"
	TokenType      TokenKind = "type"
	TokenDecorator TokenKind = "decorator"
	TokenString    TokenKind = "string"
	TokenName      TokenKind = "name"
	TokenPlain     TokenKind = "plain"
	TokenComment   TokenKind = "comment"
)

type Token struct {
	Kind TokenKind
	Text string
}

func kw(s string) Token   { return Token{Kind: TokenKeyword, Text: s} }
func typ(s string) Token  { return Token{Kind: TokenType, Text: s} }
func dec(s string) Token  { return Token{Kind: TokenDecorator, Text: s} }
func str(s string) Token  { return Token{Kind: TokenString, Text: s} }
func name(s string) Token { return Token{Kind: TokenName, Text: s} }
func txt(s string) Token  { return Token{Kind: TokenPlain, Text: s} }

var CodeExample = CodeExampleCopy{
	Title:    T("homepage.codeExample.title", "Simple. Flexible. Your Choice."),
	Subtitle: T("homepage.codeExample.subtitle", "Use familiar patterns without framework limitations. Each HestJS package integrates seamlessly, whether you use one or combine them all."),
	Bullets: []Bullet{
		{
			Title:       T("homepage.codeExample.patterns.title", "Familiar Patterns, Zero Lock-in"),
			Description: T("homepage.codeExample.patterns.description", "Use decorators and dependency injection without framework constraints"),
		},
		{
			Title:       T("homepage.codeExample.pick.title", "Pick What You Need"),
			Description: T("homepage.codeExample.pick.description", "Install only the packages you want - from validation to CQRS to logging"),
		},
		{
			Title:       T("homepage.codeExample.typescript.title", "TypeScript First"),
			Description: T("homepage.codeExample.typescript.description", "Full type safety across all packages with excellent developer experience"),
		},
	},
	Snippet: Snippet{
		FileName: "app.controller.ts",
		Lines: []CodeLine{
			{Gap: 1, Tokens: []Token{{Kind: TokenComment, Text: "// app.controller.ts"}}},
			{Gap: 3, Tokens: []Token{kw("import"), txt(" { "), typ("Controller"), txt(", "), typ("Get"), txt(", "), typ("Inject"), txt(" } "), kw("from"), str(" '@hestjs/core'"), txt(";")}},
			{Gap: 3, Tokens: []Token{kw("import"), txt(" { "), typ("AppService"), txt(" } "), kw("from"), str(" './app.service'"), txt(";")}},
			{Gap: 3, Tokens: []Token{dec("@Controller"), txt("()")}},
			{Gap: 2, Tokens: []Token{kw("export class"), name(" AppController"), txt(" {")}},
			{Indent: 1, Gap: 2, Tokens: []Token{typ("constructor"), txt("(")}},
			{Indent: 2, Gap: 2, Tokens: []Token{dec("@Inject"), txt("() "), kw("private"), txt(" appService: "), name("AppService")}},
			{Indent: 1, Gap: 3, Tokens: []Token{txt(") {}")}},
			{Indent: 1, Gap: 2, Tokens: []Token{dec("@Get"), txt("("), str("'/'"), txt(")")}},
			{Indent: 1, Gap: 2, Tokens: []Token{kw("async"), name(" getHello"), txt("() {")}},
			{Indent: 2, Gap: 2, Tokens: []Token{kw("return"), txt(" "), typ("this"), txt(".appService."), name("getHello"), txt("();")}},
			{Indent: 1, Gap: 1, Tokens: []Token{txt("}")}},
			{Tokens: []Token{txt("}")}},
		},
	},
}

// FeatureItem is one card in the features grid. Accent is the gradient
// utility pair behind the icon.
type FeatureItem struct {
	Title       Text
	Description Text
	Icon        string
	Accent      string
}

type FeaturesCopy struct {
	Title    Text
	Subtitle Text
	Items    []FeatureItem
}

var Features = FeaturesCopy{
	Title:    T("homepage.features.title", "Why Choose HestJS Packages?"),
	Subtitle: T("homepage.features.subtitle", "Unlike monolithic frameworks, HestJS gives you the power to choose. Use one package or combine them all - the architecture is entirely up to you."),
	Items: []FeatureItem{
		{
			Title:       T("homepage.features.modular.title", "Modular by Design"),
			Description: T("homepage.features.modular.description", "Pick only the packages you need. Each HestJS package works independently or together, giving you complete control over your stack."),
			Icon:        "layers",
			Accent:      "from-purple-400 to-indigo-500",
		},
		{
			Title:       T("homepage.features.fast.title", "Blazing Fast"),
			Description: T("homepage.features.fast.description", "Built on Hono's performance foundation. No unnecessary overhead, just the features you choose to include."),
			Icon:        "zap",
			Accent:      "from-yellow-400 to-orange-500",
		},
		{
			Title:       T("homepage.features.typesafe.title", "Type Safe"),
			Description: T("homepage.features.typesafe.description", "Full TypeScript support with strict typing across all packages. Catch errors early, code with confidence."),
			Icon:        "shield",
			Accent:      "from-green-400 to-emerald-500",
		},
		{
			Title:       T("homepage.features.lockin.title", "Zero Lock-in"),
			Description: T("homepage.features.lockin.description", "No vendor constraints. Use HestJS packages with any setup, migrate gradually, or mix with other libraries freely."),
			Icon:        "code",
			Accent:      "from-blue-400 to-cyan-500",
		},
		{
			Title:       T("homepage.features.ecosystem.title", "Package Ecosystem"),
			Description: T("homepage.features.ecosystem.description", "From CQRS to logging, validation to documentation - choose from a growing collection of focused packages."),
			Icon:        "database",
			Accent:      "from-pink-400 to-rose-500",
		},
		{
			Title:       T("homepage.features.freedom.title", "Developer Freedom"),
			Description: T("homepage.features.freedom.description", "Familiar patterns without the framework overhead. Build your way, not ours."),
			Icon:        "git-branch",
			Accent:      "from-teal-400 to-cyan-500",
		},
	},
}

type GetStartedCopy struct {
	Title           Text
	Body            Text
	ReadDocs        Text
	DownloadExample Text
	TerminalComment Text
	Commands        []string
}

var GetStarted = GetStartedCopy{
	Title:           T("homepage.getStarted.title", "Ready to Build Your Way?"),
	Body:            T("homepage.getStarted.body", "Start with the packages you need, expand when you want to. No framework constraints, no vendor lock-in - just powerful tools that respect your choices."),
	ReadDocs:        T("homepage.getStarted.readDocs", "Read Documentation"),
	DownloadExample: T("homepage.getStarted.downloadExamples", "Download Examples"),
	TerminalComment: T("homepage.getStarted.terminalComment", "# Create a new HestJS project"),
	Commands: []string{
		InstallCommand,
		"cd my-app",
		"bun run dev",
	},
}

// PageMeta is the home page's title suffix and meta description.
type PageMeta struct {
	TitleSuffix Text
	Description Text
}

var HomeMeta = PageMeta{
	TitleSuffix: T("homepage.meta.titleSuffix", "Modern Node.js Framework"),
	Description: T("homepage.meta.description", "HestJS is a modern, type-safe Node.js framework inspired by NestJS, built with Hono and TSyringe for dependency injection."),
}

// Chrome is the copy for the navbar and footer.
var Chrome = struct {
	Docs        Text
	Examples    Text
	Language    Text
	ToggleTheme Text
	Copyright   Text
	SkipToMain  Text
	Previous    Text
	Next        Text
	NotFound    Text
	NotFoundMsg Text
	BackHome    Text
}{
	Docs:        T("theme.navbar.docs", "Docs"),
	Examples:    T("theme.navbar.examples", "Examples"),
	Language:    T("theme.navbar.language", "Language"),
	ToggleTheme: T("theme.colorToggle.ariaLabel", "Switch between dark and light mode"),
	Copyright:   T("theme.footer.copyright", "Built with HestJS."),
	SkipToMain:  T("theme.common.skipToMainContent", "Skip to main content"),
	Previous:    T("theme.docs.paginator.previous", "Previous"),
	Next:        T("theme.docs.paginator.next", "Next"),
	NotFound:    T("theme.NotFound.title", "Page Not Found"),
	NotFoundMsg: T("theme.NotFound.p1", "We could not find what you were looking for."),
	BackHome:    T("theme.NotFound.backHome", "Back to home"),
}

func texts() []Text {
	texts := []Text{
		Hero.Headline, Hero.SubtitleLead, Hero.SubtitleEmphasis, Hero.SubtitleRest,
		Hero.GetStarted, Hero.CopyHint, Hero.Copied, Hero.ScrollHint,
		CodeExample.Title, CodeExample.Subtitle,
		Features.Title, Features.Subtitle,
		GetStarted.Title, GetStarted.Body, GetStarted.ReadDocs, GetStarted.DownloadExample, GetStarted.TerminalComment,
		HomeMeta.TitleSuffix, HomeMeta.Description,
		Chrome.Docs, Chrome.Examples, Chrome.Language, Chrome.ToggleTheme, Chrome.Copyright, Chrome.SkipToMain,
		Chrome.Previous, Chrome.Next, Chrome.NotFound, Chrome.NotFoundMsg, Chrome.BackHome,
	}
	for _, b := range Hero.Badges {
		texts = append(texts, b.Label)
	}
	for _, b := range CodeExample.Bullets {
		texts = append(texts, b.Title, b.Description)
	}
	for _, f := range Features.Items {
		texts = append(texts, f.Title, f.Description)
	}
	return texts
}

// Keys returns every key referenced by the home sections and the page chrome.
func Keys() []string {
	all := texts()
	keys := make([]string, 0, len(all))
	for _, t := range all {
		keys = append(keys, t.Key)
	}
	return keys
}

// Defaults maps each key from Keys to its literal default.
func Defaults() map[string]string {
	all := texts()
	out := make(map[string]string, len(all))
	for _, t := range all {
		out[t.Key] = t.Default
	}
	return out
}

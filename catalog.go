package latexlearn

// Catalog pairs topic study material with the question bank. Shells seed a
// Catalog once (built-in, sqlite, or YAML packs) and hand per-session copies
// of the bank out via NewBank.
type Catalog struct {
	Topics    []Topic               // display order
	Questions map[string][]Question // keyed by topic name
}

// Topic returns the study material for a topic name.
func (c *Catalog) Topic(name string) (Topic, bool) {
	for _, t := range c.Topics {
		if t.Name == name {
			return t, true
		}
	}
	return Topic{}, false
}

// SnippetCategories are the insertable snippets offered by the compiler and
// practice editors, grouped by category.
var SnippetCategories = map[string]map[string]string{
	"Algebra": {
		"Fraction":    `\frac{a}{b}`,
		"Square Root": `\sqrt{x}`,
		"Power":       `x^{n}`,
	},
	"Calculus": {
		"Summation": `\sum_{i=1}^{n} i`,
		"Integral":  `\int_{a}^{b} f(x)\,dx`,
		"Limit":     `\lim_{x \to \infty} f(x)`,
	},
	"Matrices": {
		"2x2 Matrix": `\begin{bmatrix} a & b \\ c & d \end{bmatrix}`,
		"3x3 Matrix": `\begin{bmatrix} a & b & c \\ d & e & f \\ g & h & i \end{bmatrix}`,
	},
	"Greek Letters": {
		"Common": `\alpha, \beta, \gamma, \pi, \theta`,
	},
	"Text": {
		"Text in Math": `\text{Hello World!}`,
	},
}

// BuiltinCatalog returns the bundled topics and question bank.
func BuiltinCatalog() *Catalog {
	return &Catalog{Topics: builtinTopics(), Questions: builtinQuiz()}
}

func builtinTopics() []Topic {
	return []Topic{
		{
			Name: "Basics",
			Note: "Introduction to LaTeX document structure, classes, and comments.\n" +
				"Learn how to set up a minimal LaTeX document and include comments for clarity.",
			Example: `
\documentclass{article}          % Defines the document class
\begin{document}                  % Start of document content
Hello World!                       % Simple text output
% This is a comment                % Comments start with %
\end{document}                    % End of document
`,
		},
		{
			Name: "Math Mode",
			Note: "Learn how to typeset mathematics in LaTeX.\n" +
				"Inline math uses `$...$` while display math can use `$$...$$` or `\\[...\\]` for better formatting.",
			Example: `
% Inline math example
$a^2 + b^2 = c^2$

% Display math example
\[
\sum_{i=1}^n i^2
\]
`,
		},
		{
			Name: "Text Formatting",
			Note: "Formatting text using bold, italics, underline, and lists.\n" +
				"Useful for emphasizing content in your documents.",
			Example: `
\textbf{Bold Text}, \textit{Italic Text}, \underline{Underlined Text}

\begin{itemize}                  % Bullet list
    \item First item
    \item Second item
\end{itemize}
`,
		},
		{
			Name: "Symbols",
			Note: "Common mathematical symbols and Greek letters.\n" +
				"Essential for writing equations and scientific notation.",
			Example: `
Greek letters: \alpha, \beta, \gamma

Mathematical symbols: \infty, \pm, \le, \ge
`,
		},
		{
			Name: "Equations",
			Note: "Using equation environments to create numbered or aligned equations.\n" +
				"Best practice: use `amsmath` for multi-line equations.",
			Example: `
\begin{align}
a + b &= c \\
x + y &= z
\end{align}
`,
		},
		{
			Name: "Figures & Tables",
			Note: "Insert and format figures and tables using float environments.\n" +
				"Allows captions, labels, and positioning for clarity.",
			Example: `
\begin{figure}[h]
\centering
\includegraphics[width=0.5\textwidth]{example.png}
\caption{Sample Figure}
\end{figure}

\begin{table}[h]
\centering
\begin{tabular}{|c|c|}
\hline
A & B \\
\hline
1 & 2 \\
\hline
\end{tabular}
\caption{Sample Table}
\end{table}
`,
		},
		{
			Name: "Fractions & Roots",
			Note: "Learn to typeset fractions, square roots, and nth roots.\n" +
				"Important for mathematical derivations and scientific writing.",
			Example: `
\frac{a+b}{c}           % Fraction
\sqrt{x^2 + y^2}        % Square root
\sqrt[n]{x}             % nth root
`,
		},
		{
			Name: "Summations & Integrals",
			Note: "Summation and integral notation.\n" +
				"Widely used in mathematics, physics, and engineering documents.",
			Example: `
\sum_{k=1}^{n} k^2       % Summation
\int_0^1 x^2 \, dx       % Definite integral
`,
		},
		{
			Name: "Limits",
			Note: "Express limits and use arrows correctly.\n" +
				"Important for calculus and analysis.",
			Example: `
\lim_{x \to 0} \frac{\sin x}{x} = 1
`,
		},
		{
			Name: "Matrices",
			Note: "Create matrices using environments like `bmatrix` or `pmatrix`.\n" +
				"Essential for linear algebra and system equations.",
			Example: `
\begin{bmatrix}
1 & 2 \\
3 & 4
\end{bmatrix}

\begin{pmatrix}
1 & 0 & 0 \\
0 & 1 & 0 \\
0 & 0 & 1
\end{pmatrix}
`,
		},
		{
			Name: "Cases",
			Note: "Define piecewise functions using the `cases` environment.\n" +
				"Useful for conditional mathematical expressions.",
			Example: `
f(x) =
\begin{cases}
x^2 & x \ge 0 \\
-x & x < 0
\end{cases}
`,
		},
		{
			Name: "Vectors",
			Note: "Represent vectors in LaTeX using arrows or bold symbols.\n" +
				"Widely used in physics and engineering notation.",
			Example: `
\vec{v} = \langle 1, 2, 3 \rangle
\mathbf{u}                 % Bold vector
\mathbf{u} \cdot \mathbf{v}  % Dot product
\|v\|                     % Vector norm
`,
		},
		{
			Name: "Alignment",
			Note: "Align equations for readability using the `aligned` environment.\n" +
				"Helps in showing step-by-step derivations neatly.",
			Example: `
\begin{aligned}
a + b &= c \\
d - e &= f
\end{aligned}
`,
		},
	}
}

func builtinQuiz() map[string][]Question {
	return map[string][]Question{
		"Basics": {
			{Text: "Which command defines the document class?", AnswerKey: `\documentclass{article}`, Options: []string{`\begin{document}`, `\documentclass{article}`, `\maketitle`, `\usepackage{article}`}},
			{Text: "Which environment encloses the document body?", AnswerKey: `\begin{document}...\end{document}`, Options: []string{`\begin{body}...\end{body}`, `\begin{text}...\end{text}`, `\begin{document}...\end{document}`, `\document{...}`}},
			{Text: "What symbol starts a comment?", AnswerKey: `%`, Options: []string{".", "%", "//", "$"}},
			{Text: "Minimal hello world class line?", AnswerKey: `\documentclass{article}`, Options: []string{`\document{article}`, `\documentclass{article}`, `\class{article}`, `\usepackage{article}`}},
			{Text: "Write a TODO comment.", AnswerKey: `% TODO`, Options: []string{`\/ TODO`, `% TODO`, `$ TODO`, `# TODO`}},
		},
		"Math Mode": {
			{Text: "Inline math delimiters?", AnswerKey: `$...$`, Options: []string{`$...$`, `$$...$$`, `\(...\)`, `\[...\]`}},
			{Text: "Display math (preferred LaTeX)?", AnswerKey: `\[...\]`, Options: []string{`$...$`, `$$...$$`, `\[...\]`, `\display{...}`}},
			{Text: "Write E=mc^2 inline.", AnswerKey: `$E=mc^2$`, Options: []string{`$E=mc^2$`, `\[E=mc^2\]`, `$$E=mc^2$$`, `E=mc^2`}},
			{Text: "Sum i=1..n of i^2 (display).", AnswerKey: `\[\sum_{i=1}^{n} i^2\]`, Options: []string{`$\sum_{i=1}^{n} i^2$`, `\[\sum_{i=1}^{n} i^2\]`, `\display{\sum i^2}`, `\{ \sum i^2 \}`}},
			{Text: "Escape recommended for dx spacing?", AnswerKey: `\,`, Options: []string{`\:`, `\;`, `\,`, `\!`}},
		},
		"Text Formatting": {
			{Text: "Bold 'Hello'.", AnswerKey: `\textbf{Hello}`, Options: []string{`\bold{Hello}`, `\textbf{Hello}`, `\bf{Hello}`, `\strong{Hello}`}},
			{Text: "Italic 'World'.", AnswerKey: `\textit{World}`, Options: []string{`\italic{World}`, `\em{World}`, `\textit{World}`, `\emph{World}`}},
			{Text: "Underline 'LaTeX'.", AnswerKey: `\underline{LaTeX}`, Options: []string{`\ul{LaTeX}`, `\uline{LaTeX}`, `\underline{LaTeX}`, `\textul{LaTeX}`}},
			{Text: "Start itemized list.", AnswerKey: `\begin{itemize}`, Options: []string{`\begin{list}`, `\begin{items}`, `\begin{itemize}`, `\begin{enumerate}`}},
			{Text: "End itemized list.", AnswerKey: `\end{itemize}`, Options: []string{`\end{items}`, `\end{list}`, `\end{enumerate}`, `\end{itemize}`}},
		},
		"Symbols": {
			{Text: "Alpha and beta commands.", AnswerKey: `\alpha \; \beta`, Options: []string{`\a \; \b`, `\alpha \; \beta`, `\greek{alpha,beta}`, `\ab`}},
			{Text: "Infinity symbol.", AnswerKey: `\infty`, Options: []string{`\inf`, `\infin`, `\infty`, `\Infinity`}},
			{Text: "Plus-minus.", AnswerKey: `\pm`, Options: []string{`\plusminus`, `\pm`, `\pmm`, `\mp`}},
			{Text: "Less-than-or-equal.", AnswerKey: `\le`, Options: []string{`\le`, `\lte`, `\<= `, `\less=`}},
			{Text: "Greater-than-or-equal.", AnswerKey: `\ge`, Options: []string{`\ge`, `\gte`, `\>=`, `\great=`}},
		},
		"Equations": {
			{Text: "Open equation env.", AnswerKey: `\begin{equation}`, Options: []string{`\begin{eq}`, `\begin{equation}`, `\eq{`, `\equation{`}},
			{Text: "Close equation env.", AnswerKey: `\end{equation}`, Options: []string{`\end{eq}`, `\equation}`, `\end{equation}`, `}`}},
			{Text: "Open align env.", AnswerKey: `\begin{align}`, Options: []string{`\begin{aligned}`, `\align{`, `\begin{align}`, `\begin{aln}`}},
			{Text: "Close align env.", AnswerKey: `\end{align}`, Options: []string{`\end{aligned}`, `\align}`, `\end{align}`, `}`}},
			{Text: "Aligned a+b=c in align.", AnswerKey: `\begin{align} a+b&=c \end{align}`, Options: []string{`\begin{align} a+b=c \end{align}`, `\begin{align} a+b&=c \end{align}`, `\align{a+b=c}`, `a+b=c`}},
		},
		"Figures & Tables": {
			{Text: "Open figure env.", AnswerKey: `\begin{figure}`, Options: []string{`\figure{`, `\begin{figure}`, `\fig{`, `\begin{image}`}},
			{Text: "Close figure env.", AnswerKey: `\end{figure}`, Options: []string{`\end{image}`, `\end{fig}`, `\end{figure}`, `}`}},
			{Text: "Open tabular env.", AnswerKey: `\begin{tabular}`, Options: []string{`\begin{table}`, `\begin{tab}`, `\begin{tabular}`, `\table{`}},
			{Text: "Close tabular env.", AnswerKey: `\end{tabular}`, Options: []string{`\end{table}`, `\end{tab}`, `\end{tabular}`, `}`}},
			{Text: "Caption command (blank).", AnswerKey: `\caption{}`, Options: []string{`\cap{}`, `\caption{}`, `\title{}`, `\figcaption{}`}},
		},
		"Fractions & Roots": {
			{Text: "a/b as a fraction.", AnswerKey: `\frac{a}{b}`, Options: []string{`\divide{a}{b}`, `\frac{a}{b}`, `\frac{a,b}`, `a/b`}},
			{Text: "Square root of x.", AnswerKey: `\sqrt{x}`, Options: []string{`\root{x}`, `\sqrt{x}`, `\sq{x}`, `\sqr{x}`}},
			{Text: "nth root of x.", AnswerKey: `\sqrt[n]{x}`, Options: []string{`\root[n]{x}`, `\sqrt[n]{x}`, `\nthroot{x}{n}`, `\powerroot{n}{x}`}},
			{Text: "(a+b)/c as fraction.", AnswerKey: `\frac{a+b}{c}`, Options: []string{`\frac{a+b}{c}`, `\frac{a+b,c}`, `{a+b}/c`, `\frac{a}{b}/c`}},
			{Text: "sqrt(x^2 + y^2).", AnswerKey: `\sqrt{x^2 + y^2}`, Options: []string{`\sqrt{x^2 + y^2}`, `\sqrt{x^2 + y^2)}`, `\sqrt{x^2 + y^2}}`, `\sqrt{x^2 + y^2]`}},
		},
		"Summations & Integrals": {
			{Text: "sum k=1..n of k.", AnswerKey: `\sum_{k=1}^{n} k`, Options: []string{`\sum_{k=1}^{n} k`, `\sum k`, `sum(k)`, `\add_{k=1}^{n} k`}},
			{Text: "sum of squares 1..n.", AnswerKey: `\sum_{k=1}^{n} k^2`, Options: []string{`\sum_{k=1}^{n} k^2`, `\sum k^2`, `\sigma k^2`, `\sum_{k=1}^n k^2`}},
			{Text: "Integral of x from 0 to 1.", AnswerKey: `\int_0^1 x \, dx`, Options: []string{`\int_0^1 x dx`, `\int_0^1 x \, dx`, `\int^1_0 x \, dx`, `\int x dx`}},
			{Text: "Integral of e^{-x} from 0 to infinity.", AnswerKey: `\int_0^{\infty} e^{-x} \, dx`, Options: []string{`\int_0^{\infty} e^{-x} \, dx`, `\int_0^\infty e^{-x} dx`, `\int e^{-x}`, `\int_0^\infty e^{-x} \, dx`}},
			{Text: "Thin space command used above.", AnswerKey: `\,`, Options: []string{`\thin`, `\ `, `\,`, `\~`}},
		},
		"Limits": {
			{Text: "lim x->0 sin x/x.", AnswerKey: `\lim_{x \to 0} \frac{\sin x}{x}`, Options: []string{`\lim_{x \to 0} \frac{\sin x}{x}`, `\lim_{x=0} \sin x/x`, `limit(sin x/x)`, `\lim \sin x/x`}},
			{Text: "lim x->inf (1+1/x)^x.", AnswerKey: `\lim_{x \to \infty} \left(1+\tfrac{1}{x}\right)^x`, Options: []string{`\lim_{x \to \infty} (1+1/x)^x`, `\lim_{x \to \infty} \left(1+\tfrac{1}{x}\right)^x`, `(1+1/x)^x`, `\lim \tfrac{1}{x}`}},
			{Text: "lim x->0 (1-cos x)/x^2.", AnswerKey: `\lim_{x \to 0} \frac{1-\cos x}{x^2}`, Options: []string{`\lim_{x \to 0} \frac{1-\cos x}{x^2}`, `(1-\cos x)/x^2`, `\frac{1-\cos x}{x^2}`, `\lim_{x=0} \frac{1-\cos x}{x^2}`}},
			{Text: "Arrow for -> in limits.", AnswerKey: `\to`, Options: []string{`->`, `\rightarrow`, `\to`, `\Rightarrow`}},
			{Text: "Spacing command (just type it).", AnswerKey: `\,`, Options: []string{`\;`, `\,`, `\:`, `\!`}},
		},
		"Matrices": {
			{Text: "2x2 bmatrix [[1,2],[3,4]].", AnswerKey: `\begin{bmatrix}1 & 2 \\ 3 & 4\end{bmatrix}`, Options: []string{`\begin{bmatrix}1,2;3,4\end{bmatrix}`, `\begin{bmatrix}1 & 2 \\ 3 & 4\end{bmatrix}`, `[1 2;3 4]`, `\matrix{1 2; 3 4}`}},
			{Text: "Identity 3x3 bmatrix.", AnswerKey: `\begin{bmatrix}1 & 0 & 0 \\ 0 & 1 & 0 \\ 0 & 0 & 1\end{bmatrix}`, Options: []string{`\begin{bmatrix}1 0 0; 0 1 0; 0 0 1\end{bmatrix}`, `\begin{bmatrix}1 & 0 & 0 \\ 0 & 1 & 0 \\ 0 & 0 & 1\end{bmatrix}`, `\Id_{3}`, `\begin{matrix}...\end{matrix}`}},
			{Text: "Open pmatrix.", AnswerKey: `\begin{pmatrix}`, Options: []string{`\pmatrix{`, `\begin{pmatrix}`, `\pmatrix()`, `\begin{matrix}`}},
			{Text: "Close pmatrix.", AnswerKey: `\end{pmatrix}`, Options: []string{`\pmatrix}`, `\end{pmatrix}`, `\end{matrix}`, `}`}},
			{Text: "Row separator command.", AnswerKey: `\\\\`, Options: []string{`&`, `\\`, `\\\\`, `\;`}},
		},
		"Cases": {
			{Text: "Open a cases env.", AnswerKey: `\begin{cases}`, Options: []string{`\begin{case}`, `\cases{`, `\begin{cases}`, `\case{`}},
			{Text: "Close a cases env.", AnswerKey: `\end{cases}`, Options: []string{`\case}`, `\end{case}`, `\end{cases}`, `}`}},
			{Text: "f(x)=x if x>=0 else -x (cases only).", AnswerKey: `\begin{cases}x & x\ge 0 \\ -x & x<0 \end{cases}`, Options: []string{`x if x>=0 else -x`, `\begin{cases}x & x\ge 0 \\ -x & x<0 \end{cases}`, `\cases{x,-x}`, `\{x,-x\}`}},
			{Text: "Symbol for >=.", AnswerKey: `\ge`, Options: []string{`>=`, `\geq`, `\ge`, `\gtr=`}},
			{Text: "Symbol for <.", AnswerKey: `<`, Options: []string{`\lt`, `<`, `\less`, `\lss`}},
		},
		"Vectors": {
			{Text: "Vector v with arrow.", AnswerKey: `\vec{v}`, Options: []string{`\vector{v}`, `\vec{v}`, `\overrightarrow{v}`, `\v{v}`}},
			{Text: "Bold vector u.", AnswerKey: `\mathbf{u}`, Options: []string{`\bold{u}`, `\vec{u}`, `\mathbf{u}`, `\textbf{u}`}},
			{Text: "Angle-bracket vector <1,2,3>.", AnswerKey: `\langle 1,2,3\rangle`, Options: []string{`<1,2,3>`, `\langle 1,2,3\rangle`, `\<1,2,3\>`, `\left<1,2,3\right>`}},
			{Text: "Dot product u.v.", AnswerKey: `\mathbf{u}\cdot\mathbf{v}`, Options: []string{`u*v`, `\mathbf{u}\cdot\mathbf{v}`, `\vec{u}\cdot\vec{v}`, `u.v`}},
			{Text: "Norm ||v||.", AnswerKey: `\|v\|`, Options: []string{`|v|`, `\|v\|`, `\norm{v}`, `\abs{v}`}},
		},
		"Alignment": {
			{Text: "Open aligned env.", AnswerKey: `\begin{aligned}`, Options: []string{`\begin{align}`, `\begin{aligned}`, `\aligned{`, `\align{`}},
			{Text: "Close aligned env.", AnswerKey: `\end{aligned}`, Options: []string{`\end{align}`, `\aligned}`, `\end{aligned}`, `}`}},
			{Text: "Align a+b=c and d-e=f.", AnswerKey: `\begin{aligned} a+b&=c \\ d-e&=f \end{aligned}`, Options: []string{`a+b=c; d-e=f`, `\begin{aligned} a+b&=c \\ d-e&=f \end{aligned}`, `\begin{aligned} a+b=c \\ d-e=f \end{aligned}`, `\align{a+b=c}`}},
			{Text: "Alignment marker symbol.", AnswerKey: `&`, Options: []string{`@`, `&`, `#`, `|`}},
			{Text: "Line break in align/aligned.", AnswerKey: `\\\\`, Options: []string{`\n`, `\\`, `\\\\`, `&`}},
		},
	}
}

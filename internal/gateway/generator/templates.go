package generator

import "strings"

// Template identifies one of the static fallback documents
type Template string

const (
	TemplatePortfolio  Template = "portfolio"
	TemplateLanding    Template = "landing page"
	TemplateHelloWorld Template = "hello world"
)

// keywordGroups is checked in order; the first group with a keyword contained
// in the lowercased description wins.
var keywordGroups = []struct {
	keywords []string
	template Template
}{
	{[]string{"portfolio", "resume"}, TemplatePortfolio},
	{[]string{"landing", "marketing"}, TemplateLanding},
	{[]string{"hello", "world"}, TemplateHelloWorld},
}

// MatchTemplate picks the fallback template for a description. Hello world is
// the default when nothing matches.
func MatchTemplate(description string) Template {
	lower := strings.ToLower(description)
	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.template
			}
		}
	}
	return TemplateHelloWorld
}

// SelectTemplate returns the static HTML document for a description
func SelectTemplate(description string) string {
	return templates[MatchTemplate(description)]
}

// HTML returns the document for a template
func (t Template) HTML() string {
	return templates[t]
}

var templates = map[Template]string{
	TemplateHelloWorld: helloWorldHTML,
	TemplatePortfolio:  portfolioHTML,
	TemplateLanding:    landingPageHTML,
}

const helloWorldHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Hello World</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
        }
        .container {
            text-align: center;
            padding: 2rem;
            background: rgba(255, 255, 255, 0.1);
            border-radius: 20px;
            backdrop-filter: blur(10px);
        }
        h1 {
            font-size: 3rem;
            margin-bottom: 1rem;
            text-shadow: 2px 2px 4px rgba(0,0,0,0.3);
        }
        p {
            font-size: 1.2rem;
            opacity: 0.9;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Hello World!</h1>
        <p>Welcome to your generated website</p>
    </div>
</body>
</html>`

const portfolioHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>My Portfolio</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            margin: 0;
            padding: 0;
            background: #f5f5f5;
        }
        .header {
            background: #2c3e50;
            color: white;
            text-align: center;
            padding: 3rem 0;
        }
        .content {
            max-width: 800px;
            margin: 2rem auto;
            padding: 0 1rem;
        }
        .project {
            background: white;
            margin: 1rem 0;
            padding: 1.5rem;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        .skills {
            display: flex;
            flex-wrap: wrap;
            gap: 0.5rem;
            margin-top: 1rem;
        }
        .skill {
            background: #3498db;
            color: white;
            padding: 0.5rem 1rem;
            border-radius: 20px;
            font-size: 0.9rem;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>My Portfolio</h1>
        <p>Web Developer & Designer</p>
    </div>
    <div class="content">
        <div class="project">
            <h2>Project 1</h2>
            <p>A responsive web application built with modern technologies.</p>
            <div class="skills">
                <span class="skill">HTML</span>
                <span class="skill">CSS</span>
                <span class="skill">JavaScript</span>
            </div>
        </div>
        <div class="project">
            <h2>Project 2</h2>
            <p>Mobile-first design with beautiful animations.</p>
            <div class="skills">
                <span class="skill">React</span>
                <span class="skill">Tailwind</span>
                <span class="skill">Node.js</span>
            </div>
        </div>
    </div>
</body>
</html>`

const landingPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Amazing Landing Page</title>
    <style>
        body {
            margin: 0;
            font-family: 'Arial', sans-serif;
            line-height: 1.6;
        }
        .hero {
            background: linear-gradient(45deg, #ff6b6b, #4ecdc4);
            color: white;
            text-align: center;
            padding: 4rem 2rem;
        }
        .hero h1 {
            font-size: 3rem;
            margin-bottom: 1rem;
        }
        .cta-button {
            display: inline-block;
            background: white;
            color: #ff6b6b;
            padding: 1rem 2rem;
            text-decoration: none;
            border-radius: 50px;
            font-weight: bold;
            margin-top: 1rem;
            transition: transform 0.3s;
        }
        .cta-button:hover {
            transform: translateY(-3px);
        }
        .features {
            padding: 3rem 2rem;
            text-align: center;
        }
        .feature-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
            gap: 2rem;
            max-width: 1000px;
            margin: 0 auto;
        }
        .feature {
            padding: 1.5rem;
            background: #f8f9fa;
            border-radius: 10px;
        }
    </style>
</head>
<body>
    <div class="hero">
        <h1>Welcome to Our Platform</h1>
        <p>The best solution for all your needs</p>
        <a href="#" class="cta-button">Get Started</a>
    </div>
    <div class="features">
        <h2>Why Choose Us?</h2>
        <div class="feature-grid">
            <div class="feature">
                <h3>Fast & Reliable</h3>
                <p>Lightning-fast performance you can count on.</p>
            </div>
            <div class="feature">
                <h3>Easy to Use</h3>
                <p>Intuitive interface designed for everyone.</p>
            </div>
            <div class="feature">
                <h3>24/7 Support</h3>
                <p>We're here to help whenever you need us.</p>
            </div>
        </div>
    </div>
</body>
</html>`

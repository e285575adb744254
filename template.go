package sitectl

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteTemplate writes the kind's default page template to the configured
// template path, overwriting any existing template.
func (a *App) WriteTemplate() (string, error) {
	path := a.config.Template
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("sitectl: mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(a.kind.Template), 0o644); err != nil {
		return "", fmt.Errorf("sitectl: write template: %w", err)
	}
	return path, nil
}

// readTemplate returns the template text. When the file does not exist yet
// the default template is written first and created is true.
func (a *App) readTemplate() (text string, created bool, err error) {
	data, err := os.ReadFile(a.config.Template)
	if err == nil {
		return string(data), false, nil
	}
	if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("sitectl: read template: %w", err)
	}
	path, err := a.WriteTemplate()
	if err != nil {
		return "", false, err
	}
	a.log.WithField("template", path).Debug("template missing, wrote default")
	return a.kind.Template, true, nil
}

const articleTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{TITLE}} — Mehdi Ben Hamida</title>
  <meta name="description" content="{{DESCRIPTION}}" />
  <link rel="icon" href="../assets/img/favicon.ico" />
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800;900&family=JetBrains+Mono:wght@400;500;600;700&display=swap" rel="stylesheet">
  <link rel="stylesheet" href="../assets/css/styles.css" />
  <link rel="stylesheet" href="../assets/css/prism-theme.css" />
  <style>
    .article-header {
      text-align: center;
      margin-bottom: 3rem;
      padding: 2rem 0;
    }
    .article-meta {
      color: var(--muted);
      font-size: 0.9rem;
      margin-bottom: 1rem;
    }
    .article-content {
      max-width: 65ch;
      margin: 0 auto;
      line-height: 1.7;
    }
    .article-content h2 {
      margin-top: 2.5rem;
      margin-bottom: 1rem;
    }
    .article-content p {
      margin-bottom: 1.25rem;
    }
    .article-content code {
      background: var(--bg-card);
      padding: 0.2rem 0.4rem;
      border-radius: 4px;
      font-size: 0.9em;
    }
    .article-content pre {
      background: var(--bg-card);
      padding: 1.5rem;
      border-radius: 8px;
      overflow-x: auto;
      margin: 1.5rem 0;
    }
    .back-link {
      display: inline-flex;
      align-items: center;
      gap: 0.5rem;
      color: var(--accent);
      text-decoration: none;
      margin-bottom: 2rem;
      transition: color 0.2s var(--ease);
    }
    .back-link:hover {
      color: var(--accent-2);
    }
  </style>
</head>
<body>
  <a class="skip-link" href="#main">Skip to content</a>
  <header class="site-header" role="banner">
    <nav class="nav" aria-label="Primary">
      <a class="logo" href="/">MBH</a>
      <button class="nav-toggle" aria-label="Toggle navigation" aria-expanded="false" aria-controls="nav-menu">
        <span class="nav-toggle-bar"></span>
        <span class="nav-toggle-bar"></span>
        <span class="nav-toggle-bar"></span>
      </button>
      <ul id="nav-menu" class="nav-menu">
        <li><a href="../index.html">About</a></li>
        <li><a href="../articles.html">Articles</a></li>
        <li><a href="../portfolio.html">Portfolio</a></li>
        <li><a href="../books.html">Books</a></li>
        <li><a href="../resume.html">Resume</a></li>
        <li><a href="mailto:mehdi@example.com" rel="nofollow noopener">Contact</a></li>
      </ul>
    </nav>
  </header>

  <main id="main" class="main-content">
    <a href="../articles.html" class="back-link">← Back to Articles</a>
    
    <article class="article-header">
      <h1>{{TITLE}}</h1>
      <p class="article-meta">{{SUBTITLE}}</p>
    </article>

    <div class="article-content">
      <p>{{DESCRIPTION}}</p>

      <h2>Section Title</h2>
      
      <p>Your content here...</p>

      <!-- Add more sections as needed -->
    </div>
  </main>

  <footer class="site-footer">
    <p>© <span id="year"></span> Mehdi Ben Hamida • <a href="https://github.com/mehdibenhamida" target="_blank" rel="noopener noreferrer">GitHub</a></p>
  </footer>

  <script src="../assets/js/main.js"></script>
  <script src="../assets/js/syntax-highlighter.js"></script>
</body>
</html>`

const projectTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{TITLE}} — Mehdi Ben Hamida</title>
  <meta name="description" content="{{DESCRIPTION}}" />
  <link rel="icon" href="../assets/img/favicon.ico" />
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800;900&family=JetBrains+Mono:wght@400;500;600;700&display=swap" rel="stylesheet">
  <link rel="stylesheet" href="../assets/css/styles.css" />
  <link rel="stylesheet" href="../assets/css/prism-theme.css" />
  <style>
    .project-header {
      text-align: center;
      margin-bottom: 3rem;
      padding: 2rem 0;
    }
    .project-meta {
      color: var(--muted);
      font-size: 0.9rem;
      margin-bottom: 1rem;
    }
    .project-content {
      max-width: 65ch;
      margin: 0 auto;
      line-height: 1.7;
    }
    .project-content h2 {
      margin-top: 2.5rem;
      margin-bottom: 1rem;
    }
    .project-content p {
      margin-bottom: 1.25rem;
    }
    .project-content code {
      background: var(--bg-card);
      padding: 0.2rem 0.4rem;
      border-radius: 4px;
      font-size: 0.9em;
    }
    .project-content pre {
      background: var(--bg-card);
      padding: 1.5rem;
      border-radius: 8px;
      overflow-x: auto;
      margin: 1.5rem 0;
    }
    .project-links-header {
      display: flex;
      justify-content: center;
      gap: 1rem;
      margin: 2rem 0;
      flex-wrap: wrap;
    }
    .project-links-header .inline-link {
      display: flex;
      align-items: center;
      gap: 0.5rem;
      padding: 0.8rem 1.5rem;
      background: rgba(0, 212, 255, 0.1);
      border: 1px solid rgba(0, 212, 255, 0.3);
      border-radius: 8px;
      transition: all 0.2s var(--ease);
    }
    .project-links-header .inline-link:hover {
      background: rgba(0, 212, 255, 0.2);
      transform: translateY(-2px);
    }
    .back-link {
      display: inline-flex;
      align-items: center;
      gap: 0.5rem;
      color: var(--accent);
      text-decoration: none;
      margin-bottom: 2rem;
      transition: color 0.2s var(--ease);
    }
    .back-link:hover {
      color: var(--accent-2);
    }
  </style>
</head>
<body>
  <a class="skip-link" href="#main">Skip to content</a>
  <header class="site-header" role="banner">
    <nav class="nav" aria-label="Primary">
      <a class="logo" href="/">MBH</a>
      <button class="nav-toggle" aria-label="Toggle navigation" aria-expanded="false" aria-controls="nav-menu">
        <span class="nav-toggle-bar"></span>
        <span class="nav-toggle-bar"></span>
        <span class="nav-toggle-bar"></span>
      </button>
      <ul id="nav-menu" class="nav-menu">
        <li><a href="../index.html">About</a></li>
        <li><a href="../articles.html">Articles</a></li>
        <li><a href="../portfolio.html">Portfolio</a></li>
        <li><a href="../books.html">Books</a></li>
        <li><a href="../resume.html">Resume</a></li>
        <li><a href="mailto:mehdi@example.com" rel="nofollow noopener">Contact</a></li>
      </ul>
    </nav>
  </header>

  <main id="main" class="main-content">
    <a href="../portfolio.html" class="back-link">← Back to Portfolio</a>
    
    <article class="project-header">
      <h1>{{TITLE}}</h1>
      <p class="project-meta">{{SUBTITLE}}</p>
      
      <div class="project-links-header">
        <a class="inline-link" href="{{GITHUB}}" target="_blank" rel="noopener noreferrer">
          <svg width="16" height="16" viewBox="0 0 24 24" fill="currentColor">
            <path d="M12 0c-6.626 0-12 5.373-12 12 0 5.302 3.438 9.8 8.207 11.387.599.111.793-.261.793-.577v-2.234c-3.338.726-4.033-1.416-4.033-1.416-.546-1.387-1.333-1.756-1.333-1.756-1.089-.745.083-.729.083-.729 1.205.084 1.839 1.237 1.839 1.237 1.07 1.834 2.807 1.304 3.492.997.107-.775.418-1.305.762-1.604-2.665-.305-5.467-1.334-5.467-5.931 0-1.311.469-2.381 1.236-3.221-.124-.303-.535-1.524.117-3.176 0 0 1.008-.322 3.301 1.23.957-.266 1.983-.399 3.003-.404 1.02.005 2.047.138 3.006.404 2.291-1.552 3.297-1.23 3.297-1.23.653 1.653.242 2.874.118 3.176.77.84 1.235 1.911 1.235 3.221 0 4.609-2.807 5.624-5.479 5.921.43.372.823 1.102.823 2.222v3.293c0 .319.192.694.801.576 4.765-1.589 8.199-6.086 8.199-11.386 0-6.627-5.373-12-12-12z"/>
          </svg>
          View on GitHub
        </a>
        <!-- {{DEMO_LINK}} placeholder for demo link if available -->
      </div>
    </article>

    <div class="project-content">
      <p>{{DESCRIPTION}}</p>

      <h2>Overview</h2>
      
      <p>Detailed description of your project goes here...</p>

      <h2>Key Features</h2>
      
      <ul>
        <li>Feature 1</li>
        <li>Feature 2</li>
        <li>Feature 3</li>
      </ul>

      <h2>Technical Implementation</h2>
      
      <p>Explain the technical aspects of your project:</p>

      <pre><code># Example code snippet
def example_function():
    """Example implementation"""
    return "Hello, World!"</code></pre>

      <h2>Installation & Usage</h2>

      <p>How to install and use your project:</p>

      <pre><code># Clone the repository
git clone {{GITHUB}}

# Install dependencies
pip install -r requirements.txt

# Run the project
python main.py</code></pre>

      <!-- Add more sections as needed -->
    </div>
  </main>

  <footer class="site-footer">
    <p>© <span id="year"></span> Mehdi Ben Hamida • <a href="https://github.com/mehdibenhamida" target="_blank" rel="noopener noreferrer">GitHub</a></p>
  </footer>

  <script src="../assets/js/main.js"></script>
  <script src="../assets/js/syntax-highlighter.js"></script>
</body>
</html>`

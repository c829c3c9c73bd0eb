package site

// pageTemplates holds the index, topic and shared partial templates.
const pageTemplates = `{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BasePath}}assets/style.css">
</head>
<body>
  <header class="site-header">
    <a class="site-title" href="{{.BasePath}}{{.IndexPage}}">{{.SiteTitle}}</a>
  </header>
{{end}}

{{define "foot"}}
  <script src="{{.BasePath}}assets/script.js"></script>
  {{- if .LiveReload}}
  <script>
  (function() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws/reload");
    ws.onmessage = function(ev) {
      try { if (JSON.parse(ev.data).type === "reload") { location.reload(); } } catch (e) {}
    };
  })();
  </script>
  {{- end}}
</body>
</html>
{{end}}

{{define "card"}}
          <a class="topic-card-wrapper" href="{{.Href}}"{{if not .Available}} data-pending="true"{{end}}{{if .Hidden}} hidden{{end}}>
            <div class="topic-card interactive">
              <div class="title-wrapper">
                <h3>{{.Title}}</h3>
                {{- if .Tags}}
                <div class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
                {{- end}}
              </div>
              <p class="desc">{{.Description}}</p>
              <div class="card-status"><span class="status-text{{if not .Available}} pending{{end}}">{{.Status}}</span></div>
            </div>
          </a>
{{end}}

{{define "diagnostic"}}
      <div class="topic-card error diagnostic">
        <h3>Failed to load the learning path</h3>
        <p>The learning path data could not be loaded. Please check the following:</p>
        <ul>
          {{- range .Causes}}
          <li{{if .Likely}} class="likely"{{end}}>{{.Text}}</li>
          {{- end}}
        </ul>
        <p class="error-message">Error: {{.Message}}</p>
      </div>
{{end}}

{{define "index"}}{{template "head" .}}
  <div class="layout">
    <aside class="toc">
      <input type="search" id="searchInput" placeholder="Search topics..." autocomplete="off" value="{{.View.Query}}"{{if .Error}} disabled{{end}}>
      <h2 class="toc-title">Contents</h2>
      <nav id="toc-list">
        {{- range .View.TOC}}
        <a href="{{.Href}}">{{.Title}}</a>
        {{- end}}
      </nav>
    </aside>
    <main id="content">
    {{- if .Error}}
      {{- template "diagnostic" .Error}}
    {{- else}}
      <div class="meta-banner"><strong>{{.View.Meta.Title}}</strong> <small>Version: {{.View.Meta.Version}} Updated: {{.View.Meta.Updated}}</small></div>
      {{- range .View.Sections}}
      <section class="level-section" id="{{.ID}}"{{if .Hidden}} hidden{{end}}>
        <h2 class="level-title">{{.Title}}</h2>
        {{- if .Description}}
        <p class="details">{{.Description}}</p>
        {{- end}}
        <div class="topic-grid">
          {{- range .Cards}}{{template "card" .}}{{end}}
        </div>
      </section>
      {{- end}}
      {{template "pending-notice"}}
    {{- end}}
    </main>
  </div>
{{template "foot" .}}{{end}}

{{define "pending-notice"}}<div id="pending-notice" class="pending-notice" role="status" hidden>This topic is still being written. Check back soon!</div>{{end}}

{{define "topic"}}{{template "head" .}}
  <main class="topic-page">
    <article class="page-content">
      {{- if .Topic.Tags}}
      <div class="tags">{{range .Topic.Tags}}<span class="tag">{{.}}</span>{{end}}</div>
      {{- end}}
      {{.Topic.Body}}
    </article>
    {{.Nav}}
    {{template "pending-notice"}}
  </main>
{{template "foot" .}}{{end}}
`

// navTemplate renders the .nav-buttons container for one layout.
const navTemplate = `{{define "button"}}<button type="button" class="toggle-btn" data-kind="{{.Kind}}"` +
	`{{if .Pending}} data-pending="true" aria-disabled="true"{{else}} data-href="{{.Href}}"{{end}}>{{.Label}}</button>{{end}}` +
	`<div class="nav-buttons" data-nav="{{.JSON}}">` +
	`{{range .Layout.Rows}}{{if .FullWidth}}<div class="nav-row full-width">{{range .Controls}}{{template "button" .}}{{end}}</div>` +
	`{{else}}{{range .Controls}}{{template "button" .}}{{end}}{{end}}{{end}}` +
	`</div>`

// cssContent is the stylesheet written to assets/style.css.
const cssContent = `:root {
  --bg: #ffffff;
  --section-bg: #f1f3f5;
  --card-bg: #ffffff;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --pending: #adb5bd;
  --error: #e03131;
  --radius: 12px;
  --transition: 0.2s ease;
  --toc-width: 240px;
}

@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1b1e;
    --section-bg: #25262b;
    --card-bg: #2c2e33;
    --text: #c1c2c5;
    --text-muted: #909296;
    --border: #373a40;
    --accent-light: #1c3a52;
  }
}

* { box-sizing: border-box; }
[hidden] { display: none !important; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}

a { color: var(--accent); text-decoration: none; }

.site-header {
  padding: 1rem 2rem;
  border-bottom: 1px solid var(--border);
}

.site-title { font-size: 1.25rem; font-weight: 700; color: var(--text); }

.layout {
  display: grid;
  grid-template-columns: var(--toc-width) 1fr;
  gap: 2rem;
  max-width: 1200px;
  margin: 0 auto;
  padding: 2rem;
}

.toc { position: sticky; top: 1rem; align-self: start; }
.toc-title { font-size: 0.85rem; text-transform: uppercase; color: var(--text-muted); }

#searchInput {
  width: 100%;
  padding: 0.5rem 0.75rem;
  border: 1px solid var(--border);
  border-radius: 8px;
  background: var(--card-bg);
  color: var(--text);
}
#searchInput:disabled { opacity: 0.5; cursor: not-allowed; }

#toc-list a {
  display: block;
  margin-bottom: 0.4rem;
  padding: 0.25rem 0.5rem;
  border-radius: 4px;
  color: var(--text);
  transition: all var(--transition);
}
#toc-list a:hover { background: var(--section-bg); }

.meta-banner { margin-bottom: 1rem; }
.meta-banner small { color: var(--text-muted); margin-left: 0.5rem; }

.level-section { margin-bottom: 2.5rem; scroll-margin-top: 1rem; }
.level-title { border-bottom: 2px solid var(--accent); padding-bottom: 0.25rem; }

.details {
  display: block;
  background: linear-gradient(to right, var(--section-bg), transparent);
  padding: 1.2rem;
  border-radius: var(--radius);
  border-left: 4px solid var(--accent);
  font-size: 0.95rem;
  margin: 1rem 0;
}

.topic-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(260px, 1fr));
  gap: 1rem;
}

.topic-card-wrapper { display: block; color: inherit; }

.topic-card {
  display: flex;
  flex-direction: column;
  height: 100%;
  padding: 1.25rem;
  background: var(--card-bg);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  transition: transform var(--transition), box-shadow var(--transition);
}
.topic-card.interactive:hover {
  transform: translateY(-2px);
  box-shadow: 0 4px 12px rgba(0, 0, 0, 0.1);
}
.topic-card h3 { margin: 0 0 0.5rem; }
.topic-card .desc { flex: 1; margin-bottom: 1.25rem; }

.tags { display: flex; flex-wrap: wrap; gap: 0.35rem; }
.tag {
  font-size: 0.75rem;
  padding: 0.1rem 0.5rem;
  border-radius: 999px;
  background: var(--accent-light);
  color: var(--accent);
}

.card-status { font-size: 0.85rem; font-weight: 600; }
.status-text { color: var(--accent); }
.status-text.pending { color: var(--pending); }
.topic-card-wrapper[data-pending="true"] .topic-card { cursor: default; }

.pending-notice {
  position: fixed;
  bottom: 1.5rem;
  left: 50%;
  transform: translateX(-50%);
  padding: 0.75rem 1.25rem;
  border-radius: 8px;
  background: var(--text);
  color: var(--bg);
  box-shadow: 0 4px 12px rgba(0, 0, 0, 0.2);
}

.topic-card.error { border-color: var(--error); }
.topic-card.error h3 { color: var(--error); }
.diagnostic li.likely { font-weight: 600; }
.error-message { font-family: monospace; font-size: 0.9rem; }

.topic-page { max-width: 900px; margin: 0 auto; padding: 2rem; }
.page-content pre { padding: 1rem; overflow-x: auto; border-radius: 8px; }

.nav-buttons {
  display: flex;
  flex-wrap: wrap;
  gap: 0.75rem;
  margin-top: 3rem;
  padding-top: 1.5rem;
  border-top: 1px solid var(--border);
}
.nav-row.full-width { width: 100%; }
.nav-row.full-width .toggle-btn { width: 100%; }

.toggle-btn {
  padding: 0.5rem 1rem;
  border: 1px solid var(--border);
  border-radius: 8px;
  background: var(--card-bg);
  color: var(--text);
  cursor: pointer;
  transition: background var(--transition);
}
.toggle-btn:hover { background: var(--accent-light); }
.toggle-btn[data-pending="true"] { color: var(--pending); cursor: default; }
.toggle-btn[data-pending="true"]:hover { background: var(--card-bg); }

@media (max-width: 768px) {
  .layout { grid-template-columns: 1fr; padding: 1rem; }
  .toc { position: static; }
}
`

// jsContent is the client script written to assets/script.js.
const jsContent = `(function() {
  "use strict";

  function text(root, selector) {
    var el = root.querySelector(selector);
    return el ? el.textContent.toLowerCase() : "";
  }

  // ===== Search filter =====
  var searchInput = document.getElementById("searchInput");

  function applyFilter(value) {
    var q = value.toLowerCase().trim();
    document.querySelectorAll(".level-section").forEach(function(section) {
      var sectionMatch = q === "" ||
        text(section, ".level-title").indexOf(q) !== -1 ||
        text(section, ".details").indexOf(q) !== -1;
      var visible = sectionMatch;
      section.querySelectorAll(".topic-card-wrapper").forEach(function(card) {
        var tags = Array.prototype.map.call(card.querySelectorAll(".tag"), function(t) {
          return t.textContent.toLowerCase();
        });
        var match = sectionMatch ||
          text(card, "h3").indexOf(q) !== -1 ||
          text(card, ".desc").indexOf(q) !== -1 ||
          tags.some(function(t) { return t.indexOf(q) !== -1; });
        card.hidden = !match;
        if (match) visible = true;
      });
      section.hidden = !visible;
    });
  }

  if (searchInput && !searchInput.disabled) {
    searchInput.addEventListener("input", function(e) { applyFilter(e.target.value); });
  }

  // ===== Pending topics =====
  var notice = document.getElementById("pending-notice");
  var noticeTimer = null;

  document.addEventListener("click", function(e) {
    var card = e.target.closest('.topic-card-wrapper[data-pending="true"], .toggle-btn[data-pending="true"]');
    if (!card) return;
    e.preventDefault();
    if (!notice) return;
    notice.hidden = false;
    clearTimeout(noticeTimer);
    noticeTimer = setTimeout(function() { notice.hidden = true; }, 3000);
  });

  // ===== Topic navigation =====
  var nav = document.querySelector(".nav-buttons");
  var navData = null;

  function navButton(kind, label, href, pending) {
    var b = document.createElement("button");
    b.type = "button";
    b.className = "toggle-btn";
    b.setAttribute("data-kind", kind);
    if (pending) {
      b.setAttribute("data-pending", "true");
      b.setAttribute("aria-disabled", "true");
    } else {
      b.setAttribute("data-href", href);
    }
    b.textContent = label;
    return b;
  }

  function layoutNav() {
    var narrow = window.innerWidth < navData.breakpoint;
    nav.innerHTML = "";
    nav.appendChild(navButton("back", navData.backLabel, navData.indexHref));
    [["prev", navData.prev], ["next", navData.next]].forEach(function(pair) {
      var entry = pair[1];
      if (!entry) return;
      var button = navButton(pair[0], entry.label, entry.href, entry.pending);
      if (narrow) {
        var row = document.createElement("div");
        row.className = "nav-row full-width";
        row.appendChild(button);
        nav.appendChild(row);
      } else {
        nav.appendChild(button);
      }
    });
  }

  if (nav) {
    try { navData = JSON.parse(nav.getAttribute("data-nav")); } catch (e) { navData = null; }
    nav.addEventListener("click", function(e) {
      var button = e.target.closest(".toggle-btn");
      if (button && button.getAttribute("data-href")) {
        window.location.href = button.getAttribute("data-href");
      }
    });
    if (navData) {
      layoutNav();
      var resizeTimer = null;
      window.addEventListener("resize", function() {
        clearTimeout(resizeTimer);
        resizeTimer = setTimeout(layoutNav, 100);
      });
    }
  }
})();
`

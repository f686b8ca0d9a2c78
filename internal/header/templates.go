package header

const headerTemplates = `
{{define "toggle"}}<div role="button" class="breadcrumb button theme-toggle{{if .Hidden}} hidden{{end}}" data-theme-toggle aria-label="Toggle dark mode"><span class="theme-icon">{{.Icon}}</span><template data-theme-alt>{{.Alt}}</template></div>{{end}}

{{define "custom"}}<header class="notion-header"><div class="notion-nav-header">{{.Breadcrumbs}}<div class="notion-nav-header-rhs breadcrumbs">{{range .Links}}{{.}}{{end}}{{template "toggle" .Toggle}}{{.Search}}</div></div>{{.Progress}}</header>{{end}}
`

// Stylesheet is served with the header.
const Stylesheet = `.nav-link {
  white-space: nowrap;
}
.theme-toggle svg {
  display: block;
}
.hidden {
  visibility: hidden;
}
`

// toggleScript reveals the toggle once the script has run, which is the
// client-side equivalent of Mount. The server always renders the sun
// placeholder, so the icon is synced to the page theme before it is shown.
const toggleScript = `(function () {
  var btn = document.querySelector('[data-theme-toggle]');
  if (!btn) return;
  var root = document.documentElement;
  var alt = btn.querySelector('template[data-theme-alt]');
  var icon = btn.querySelector('.theme-icon');
  function syncIcon() {
    if (!alt || !icon) return;
    var dark = root.classList.contains('dark-mode');
    var showsMoon = icon.querySelector('.moon-icon') !== null;
    if (dark !== showsMoon) {
      var current = icon.innerHTML;
      icon.innerHTML = alt.innerHTML;
      alt.innerHTML = current;
    }
  }
  btn.addEventListener('click', function () {
    root.classList.toggle('dark-mode');
    syncIcon();
  });
  syncIcon();
  btn.classList.remove('hidden');
})();
`

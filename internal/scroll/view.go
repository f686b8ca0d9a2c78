package scroll

import (
	"bytes"
	"html/template"
	"strconv"
)

// DefaultCommentSelector is the comment widget measured when none is configured.
const DefaultCommentSelector = ".giscus"

var barTemplate = template.Must(template.New("bar").Parse(
	`<div class="scroll-progress" data-main-selector="{{.Main}}" data-comment-selector="{{.Comment}}"><div class="scroll-progress-bar" style="width: {{.Width}}%"></div></div>`))

type barData struct {
	Main    string
	Comment string
	Width   template.CSS
}

// Bar renders the progress container at the given width. The client script
// reads the selectors from its data attributes.
func Bar(progress float64, commentSelector string) template.HTML {
	if commentSelector == "" {
		commentSelector = DefaultCommentSelector
	}
	width := strconv.FormatFloat(clamp(progress, 0, 100), 'f', -1, 64)
	var buf bytes.Buffer
	if err := barTemplate.Execute(&buf, barData{Main: "main", Comment: commentSelector, Width: template.CSS(width)}); err != nil {
		panic("scroll: rendering bar: " + err.Error())
	}
	return template.HTML(buf.String())
}

// Style is the stylesheet for the progress bar.
const Style = `.scroll-progress {
  position: fixed;
  top: 0;
  left: 0;
  width: 100%;
  height: 3px;
  z-index: 300;
  pointer-events: none;
}
.scroll-progress-bar {
  height: 100%;
  background: var(--fg-color-2, #2e75cc);
  transition: width 0.1s linear;
}
`

// Script drives the progress bar in the browser with the same calculation as
// Compute.
const Script = `(function () {
  var bar = document.querySelector('.scroll-progress');
  if (!bar) return;
  var main = document.querySelector(bar.dataset.mainSelector || 'main');
  if (!main) return;
  var fill = bar.querySelector('.scroll-progress-bar');
  var visible = false;

  function set(p) { fill.style.width = p + '%'; }

  function compute() {
    var rect = main.getBoundingClientRect();
    if (rect.top > 0) return 0;
    var comment = document.querySelector(bar.dataset.commentSelector || '.giscus');
    var height = rect.height - (comment ? comment.clientHeight : 0);
    var total = height - window.innerHeight;
    if (total <= 0) return 100;
    var p = (-rect.top / total) * 100;
    return Math.min(100, Math.max(0, p));
  }

  var observer = new IntersectionObserver(function (entries) {
    entries.forEach(function (entry) {
      visible = entry.isIntersecting;
      set(visible ? compute() : 0);
    });
  });
  observer.observe(main);

  function onScroll() { if (visible) set(compute()); }
  window.addEventListener('scroll', onScroll, { passive: true });

  window.addEventListener('pagehide', function () {
    observer.disconnect();
    window.removeEventListener('scroll', onScroll);
  });
})();
`

package web

// pageTemplate is the html/template for the landing page. Every card is
// rendered; cards the controller hides carry the hidden attribute.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Site.Title}}{{if ne .Category "all"}} · {{.Label}}{{end}}</title>
  <link rel="stylesheet" href="{{.StyleHref}}">
</head>
<body data-swipe-threshold="{{.Swipe.Threshold}}" data-swipe-top-slack="{{.Swipe.TopSlack}}" data-swipe-breakpoint="{{.Swipe.Breakpoint}}" data-close-delay="{{.Swipe.CloseDelay}}">
  <header class="hero">
    <h1>{{.Site.Title}}</h1>
    <p class="tagline">{{.Site.Tagline}}</p>
    <nav class="site-nav">
      <a href="{{.FAQHref}}" data-dialog="faq">FAQ</a>
      <a href="{{.BlogHref}}" data-dialog="blog">Blog</a>
      <a href="{{.ContactHref}}" data-dialog="contact">Contact</a>
    </nav>
  </header>

  <main>
    <div class="filters" role="toolbar" aria-label="Filter domains">
      {{range .Filters}}<a class="domain-filter-button{{if .Active}} active{{end}}" href="{{.Href}}" data-filter="{{.Key}}"{{if .Active}} aria-current="true"{{end}}>{{.Label}} <span class="count">{{.Count}}</span></a>
      {{end}}
    </div>

    <p class="summary">Showing {{.Revealed}} of {{.MatchCount}}{{if ne .Category "all"}} in {{.Label}}{{end}}</p>

    <section id="portfolio-grid" class="grid">
      {{range .Cards}}<article class="card" data-domain="{{.ID}}" data-price="{{.Price}}" data-description="{{.Description}}"{{if not .Visible}} hidden{{end}}>
        <a href="{{.Href}}" data-dialog="domain">
          <h2>{{.Display}}</h2>
          {{if ne .Display .ID}}<p class="ascii">{{.ID}}</p>{{end}}
          <p class="price">{{.Price}}</p>
        </a>
      </article>
      {{end}}
    </section>

    {{if .HasMore}}<div class="more"><a id="load-more-btn" class="button" href="{{.MoreHref}}">Load more</a></div>{{end}}
  </main>

  <dialog id="domain" class="modal"{{if eq .Dialog "domain"}} open{{end}}>
    <a class="close" href="{{.CloseHref}}" data-close="domain" aria-label="Close">&times;</a>
    <h2 id="modalDomainName">{{with .Detail}}{{.Display}}{{end}}</h2>
    <p id="modalDomainPrice" class="price">{{with .Detail}}{{.Price}}{{end}}</p>
    <p id="modalDomainDescription">{{with .Detail}}{{.Description}}{{end}}</p>
    <a id="modalNextButton" class="button" target="_blank" rel="noopener" href="{{with .Detail}}{{.NextURL}}{{end}}" data-registrar="{{.Site.RegistrarURL}}">Next</a>
  </dialog>

  <dialog id="faq" class="modal"{{if eq .Dialog "faq"}} open{{end}}>
    <a class="close" href="{{.CloseHref}}" data-close="faq" aria-label="Close">&times;</a>
    <h2>Frequently Asked Questions</h2>
    {{range .FAQ}}<div class="faq-item" id="faq-{{.Index}}">
      <a class="faq-question" href="{{.Href}}" data-faq="{{.Index}}">{{.Question}}</a>
      <div class="faq-answer{{if .Open}} open{{end}}">{{.Answer}}</div>
    </div>
    {{end}}
  </dialog>

  <dialog id="contact" class="modal"{{if eq .Dialog "contact"}} open{{end}}>
    <a class="close" href="{{.CloseHref}}" data-close="contact" aria-label="Close">&times;</a>
    <h2>Contact</h2>
    {{if .Contact.Sent}}<p class="notice">Thanks, your message has been sent.</p>{{end}}
    {{if .Contact.Error}}<p class="error">{{.Contact.Error}}</p>{{end}}
    <form method="post" action="{{.Contact.Action}}">
      <input type="hidden" name="category" value="{{.Category}}">
      <input type="hidden" name="pages" value="{{.Page}}">
      <label>Name <input name="name" required maxlength="200"></label>
      <label>Email <input name="email" type="email" required></label>
      <label>Domain <input name="domain"{{with .Detail}} value="{{.Name}}"{{end}}></label>
      <label>Message <textarea name="message" required></textarea></label>
      <button type="submit" class="button">Send</button>
    </form>
  </dialog>

  <dialog id="blog" class="modal"{{if eq .Dialog "blog"}} open{{end}}>
    <a class="close" href="{{.CloseHref}}" data-close="blog" aria-label="Close">&times;</a>
    {{with .Post}}<article class="post">
      <h2>{{.Title}}</h2>
      {{.Body}}
    </article>
    <a href="{{$.BlogHref}}">All posts</a>
    {{else}}<h2>Blog</h2>
    <ul class="posts">
      {{range .Posts}}<li><a href="{{.Href}}">{{.Title}}</a><p>{{.Summary}}</p></li>
      {{end}}
    </ul>
    {{end}}
  </dialog>

  <script src="{{.ScriptHref}}"></script>
</body>
</html>
`

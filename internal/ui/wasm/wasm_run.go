//go:build js && wasm

// Package wasm binds the page behavior to the browser through syscall/js.
package wasm

import (
	"syscall/js"

	"github.com/Its-donkey/portfolio/internal/ui/app"
	"github.com/Its-donkey/portfolio/internal/ui/dom"
	"github.com/Its-donkey/portfolio/internal/ui/forms"
	"github.com/Its-donkey/portfolio/internal/ui/model"
	"github.com/Its-donkey/portfolio/logging"
)

// RunApp starts the controller once the document is parsed and blocks forever.
func RunApp() {
	done := make(chan struct{})
	document := js.Global().Get("document")

	if document.Get("readyState").String() == "loading" {
		var ready js.Func
		ready = js.FuncOf(func(js.Value, []js.Value) any {
			ready.Release()
			start()
			return nil
		})
		document.Call("addEventListener", "DOMContentLoaded", ready)
	} else {
		start()
	}
	<-done
}

func start() {
	window := js.Global()
	doc := jsDocument{v: window.Get("document")}
	win := jsWindow{v: window}
	root := doc.v.Get("documentElement")

	level := logging.INFO
	if raw := root.Get("dataset").Get("logLevel"); raw.Type() == js.TypeString {
		level = logging.ParseLevel(raw.String())
	}
	logger := logging.New("portfolio", level, consoleWriter{})

	els := resolveElements(doc)
	ctrl, err := app.New(app.DefaultConfig(), els, app.Env{
		Document:  doc,
		Window:    win,
		Store:     localStore{},
		Scheduler: timeoutScheduler{},
		Logger:    logger,
	})
	if err != nil {
		logger.Error("app", "controller init failed", err, nil)
		return
	}

	ctrl.Start()
	releaseHandlers()
	bindEvents(ctrl, doc, window, els)
	if !observeVisibility(els.Animated, ctrl.Intersect) {
		logger.Warn("reveal", "IntersectionObserver unavailable, revealing immediately", nil)
		for _, el := range els.Animated {
			ctrl.Intersect(el)
		}
	}
}

func resolveElements(doc jsDocument) app.Elements {
	els := app.Elements{
		Root:        wrap(doc.v.Get("documentElement")),
		Body:        wrap(doc.v.Get("body")),
		Navbar:      doc.ByID(model.NavbarID),
		NavMenu:     doc.ByID(model.NavMenuID),
		NavToggle:   doc.ByID(model.NavToggleID),
		ThemeToggle: doc.ByID(model.ThemeToggleID),
		ThemeIcon:   doc.query(model.ThemeIconSelector),
		Form:        doc.ByID(model.ContactFormID),
		Links:       doc.queryAll(model.NavLinkSelector),
		Sections:    doc.queryAll(model.SectionSelector),
		Fields:      make(map[forms.Field]dom.Element),
	}
	if els.Form != nil {
		form := unwrap(els.Form)
		els.Submit = wrap(form.Call("querySelector", model.SubmitSelector))
		for _, name := range model.ContactFields {
			if field := wrap(form.Call("querySelector", `[name="`+name+`"]`)); field != nil {
				els.Fields[forms.Field(name)] = field
			}
		}
	}
	for _, class := range model.RevealClasses {
		els.Animated = append(els.Animated, doc.queryAll("."+class)...)
	}
	return els
}

func bindEvents(ctrl *app.Controller, doc jsDocument, window js.Value, els app.Elements) {
	addHandler(window, "scroll", func(js.Value, []js.Value) any {
		ctrl.Scroll()
		return nil
	})
	addHandler(window, "resize", func(js.Value, []js.Value) any {
		ctrl.Resize()
		return nil
	})
	addHandler(doc.v, "keydown", func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			ctrl.KeyDown(stringOrEmpty(args[0].Get("key")))
		}
		return nil
	})
	navbar := unwrap(els.Navbar)
	addHandler(doc.v, "click", func(_ js.Value, args []js.Value) any {
		target := eventTarget(args)
		inside := target.Truthy() && navbar.Call("contains", target).Bool()
		ctrl.DocumentClick(inside)
		return nil
	})
	addHandler(unwrap(els.NavToggle), "click", func(js.Value, []js.Value) any {
		ctrl.MenuToggleClick()
		return nil
	})
	for _, link := range els.Links {
		link := link
		addHandler(unwrap(link), "click", func(_ js.Value, args []js.Value) any {
			preventDefault(args)
			ctrl.LinkClick(link)
			return nil
		})
	}
	addHandler(unwrap(els.ThemeToggle), "click", func(js.Value, []js.Value) any {
		ctrl.ThemeToggleClick()
		return nil
	})
	addHandler(unwrap(els.Form), "submit", func(_ js.Value, args []js.Value) any {
		preventDefault(args)
		ctrl.FormSubmit()
		return nil
	})
	for field, el := range els.Fields {
		name := string(field)
		addHandler(unwrap(el), "blur", func(js.Value, []js.Value) any {
			ctrl.FieldBlur(name)
			return nil
		})
		addHandler(unwrap(el), "input", func(js.Value, []js.Value) any {
			ctrl.FieldInput(name)
			return nil
		})
	}
}

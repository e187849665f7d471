// cmd/drishti/templates.go
package main

import (
	"os"
	"path/filepath"
)

// CreateDefaultTemplates materializes the dashboard page and its assets
// on first run. Existing files are left alone so local edits survive
// restarts.
func CreateDefaultTemplates() error {
	if err := os.MkdirAll(TemplatesDir, 0755); err != nil {
		return err
	}
	if err := os.MkdirAll(StaticDir, 0755); err != nil {
		return err
	}

	files := map[string]string{
		filepath.Join(TemplatesDir, "index.html"): indexTemplate,
		filepath.Join(StaticDir, "style.css"):     defaultCSS,
		filepath.Join(StaticDir, "dashboard.js"):  dashboardJS,
	}

	for path, content := range files {
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}

	return nil
}

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.AppName}} Defence Dashboard</title>
    <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
    <link rel="stylesheet" href="/static/style.css">
</head>
<body>
    <nav class="topbar">
        <span class="brand">{{.AppName}}</span>
        <button onclick="showMap()">Map</button>
        <button onclick="showNews()">Newsletters</button>
        <button onclick="showInsights()">AI Insights</button>
    </nav>

    <section id="mapSection" class="panel active">
        <div id="map"></div>
    </section>

    <section id="newsSection" class="panel">
        <div id="newsContent"></div>
    </section>

    <section id="insightsSection" class="panel">
        <div id="aiContent"></div>
    </section>

    <footer>{{.AppName}} v{{.Version}}</footer>

    <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
    <script src="https://unpkg.com/leaflet.heat@0.2.0/dist/leaflet-heat.js"></script>
    <script src="/static/dashboard.js"></script>
</body>
</html>
`

const defaultCSS = `body {
    margin: 0;
    font-family: system-ui, sans-serif;
    background: #0b1622;
    color: #dce6f0;
}

.topbar {
    display: flex;
    gap: 8px;
    align-items: center;
    padding: 10px 16px;
    background: #13283c;
}

.topbar .brand {
    font-weight: bold;
    margin-right: 16px;
    letter-spacing: 2px;
}

.panel { display: none; padding: 12px; }
.panel.active { display: block; }

#map { height: 82vh; border-radius: 6px; }

.card {
    background: linear-gradient(145deg, #0f1f2f, #13283c);
    border-radius: 8px;
    padding: 14px;
    margin-bottom: 12px;
}

.card a { color: #6fb3e0; }

.intel-banner {
    background: #1a2b3c;
    padding: 6px 10px;
    font-size: 12px;
    letter-spacing: 1px;
}

footer {
    padding: 8px 16px;
    font-size: 12px;
    color: #6c7c8c;
}
`

const dashboardJS = `// Dashboard wiring: map, newsletters, AI insights, live refresh
let cachedAiReport = null;

function activate(id) {
    document.querySelectorAll(".panel").forEach(p => p.classList.remove("active"));
    document.getElementById(id).classList.add("active");
}

function showMap() {
    activate("mapSection");
    setTimeout(() => { map.invalidateSize(); }, 300);
}

function showNews() { activate("newsSection"); }

function showInsights() {
    activate("insightsSection");
    const div = document.getElementById("aiContent");
    if (cachedAiReport) {
        div.innerHTML = cachedAiReport;
        return;
    }
    div.innerHTML = "<p>Analyzing strategic patterns...</p>";
    fetch("/api/ai-analysis")
        .then(res => res.json())
        .then(data => {
            cachedAiReport =
                '<div class="intel-banner">COMMAND INTELLIGENCE BRIEF</div>' +
                '<div class="card">' + data.analysis.replace(/\n/g, "<br>") + '</div>';
            div.innerHTML = cachedAiReport;
        });
}

const map = L.map("map").setView([22.5, 71.5], 7);
L.tileLayer("https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png", {
    attribution: "&copy; OpenStreetMap contributors &copy; CARTO",
    subdomains: "abcd",
    maxZoom: 20
}).addTo(map);

let markers = [];
let heatLayer = null;

function loadHeatmap() {
    fetch("/api/heatmap")
        .then(res => res.json())
        .then(data => {
            markers.forEach(m => map.removeLayer(m));
            markers = [];
            if (heatLayer) map.removeLayer(heatLayer);

            data.articles.forEach(article => {
                const marker = L.circleMarker([article.lat, article.lon], {
                    radius: 4, color: "#1a2b3c", fillColor: "#ff0000",
                    fillOpacity: 0.6, weight: 1
                }).addTo(map);
                marker.bindPopup(
                    "<small><b>DATE: " + article.published + "</b></small><br>" +
                    "<b>" + article.title + "</b><hr>" + article.summary +
                    "<br><br><a href='" + article.link + "' target='_blank'>Full Report</a>"
                );
                markers.push(marker);
            });

            heatLayer = L.heatLayer(data.heat, {
                radius: 15, blur: 15, maxZoom: 10, minOpacity: 0.3
            }).addTo(map);
        });
}

function loadNewsletters() {
    fetch("/api/newsletters")
        .then(res => res.json())
        .then(data => {
            const div = document.getElementById("newsContent");
            div.innerHTML = "";
            data.forEach(article => {
                div.innerHTML +=
                    '<div class="card">' +
                    '<small>' + article.published + '</small>' +
                    '<h3>' + article.title + '</h3>' +
                    '<p>' + article.summary + '</p>' +
                    '<a href="' + article.link + '" target="_blank">Read Full Article</a>' +
                    '</div>';
            });
        });
}

function connectWebSocket() {
    const protocol = window.location.protocol === "https:" ? "wss:" : "ws:";
    const socket = new WebSocket(protocol + "//" + window.location.host + "/api/ws");
    socket.onmessage = function (event) {
        const data = JSON.parse(event.data);
        if (data.type === "articles_refreshed") {
            cachedAiReport = null;
            loadHeatmap();
            loadNewsletters();
        }
    };
    socket.onclose = function () {
        setTimeout(connectWebSocket, 5000);
    };
}

loadHeatmap();
loadNewsletters();
connectWebSocket();
`
